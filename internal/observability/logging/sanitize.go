package logging

import "regexp"

var (
	// apiKey=... in query strings; NewsAPI also accepts "apikey".
	apiKeyParamPattern = regexp.MustCompile(`(?i)(api_?key=)[^&\s"']+`)

	// X-Api-Key / Authorization header values echoed into errors.
	apiKeyHeaderPattern = regexp.MustCompile(`(?i)((?:x-api-key|authorization):\s*)(?:bearer\s+)?[^\s,"']+`)

	// Credentials embedded in URLs.
	userinfoPattern = regexp.MustCompile(`://([^:/@\s]+):([^@/\s]+)@`)
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return Sanitize(err.Error())
}

// Sanitize masks credentials in msg.
func Sanitize(msg string) string {
	msg = apiKeyParamPattern.ReplaceAllString(msg, "${1}****")
	msg = apiKeyHeaderPattern.ReplaceAllString(msg, "${1}****")
	msg = userinfoPattern.ReplaceAllString(msg, "://$1:****@")
	return msg
}
