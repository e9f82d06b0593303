package entity

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Minimum lengths, in characters, of the required News text fields.
const (
	MinTitleLength       = 3
	MinSourceLength      = 3
	MinAuthorLength      = 4
	MinDescriptionLength = 11
)

// requireMinLength fails when value has fewer than min characters.
// An empty value is reported as missing rather than short.
func requireMinLength(field, value string, min int) error {
	if value == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	if n := utf8.RuneCountInString(value); n < min {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters, got %d", min, n),
		}
	}
	return nil
}

func requireTime(field string, value time.Time) error {
	if value.IsZero() {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}
