package metrics

import (
	"strconv"
	"time"
)

// RecordNewsRetrieved records a successful retrieval returning count items.
func RecordNewsRetrieved(source string, count int) {
	NewsRetrieveTotal.WithLabelValues(source, "success").Inc()
	NewsRetrievedItemsTotal.WithLabelValues(source).Add(float64(count))
}

// RecordNewsRetrieveFailure records a failed retrieval.
// outcome names the error kind, e.g. "remote" or "validation".
func RecordNewsRetrieveFailure(source, outcome string) {
	NewsRetrieveTotal.WithLabelValues(source, outcome).Inc()
}

// RecordRetrieveDuration records how long a retrieval took, successful or not.
func RecordRetrieveDuration(source string, duration time.Duration) {
	NewsRetrieveDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordNewsSave records the outcome of a save call.
func RecordNewsSave(source, outcome string) {
	NewsSaveTotal.WithLabelValues(source, outcome).Inc()
}

// RecordDuplicates records news dropped because their id was already seen.
func RecordDuplicates(count int) {
	if count > 0 {
		NewsDuplicatesTotal.Add(float64(count))
	}
}

// RecordUpstreamRequest records a provider request. A statusCode of 0 means the
// request failed before a response was received.
func RecordUpstreamRequest(path string, statusCode int, duration time.Duration) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	UpstreamRequestsTotal.WithLabelValues(path, status).Inc()
	UpstreamRequestDuration.WithLabelValues(path).Observe(duration.Seconds())
}

// RecordCircuitState records whether the named breaker is open.
func RecordCircuitState(circuit string, open bool) {
	v := 0.0
	if open {
		v = 1
	}
	UpstreamCircuitOpen.WithLabelValues(circuit).Set(v)
}
