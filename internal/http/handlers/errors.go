// Package handlers defines HTTP-layer error codes used across all API
// endpoints.
//
// These symbolic constants are mapped to HTTP responses via the fail()
// helper and give clients a stable, machine-readable error taxonomy that
// supplements human-readable messages. Generic codes mirror common HTTP
// status semantics; domain-specific codes cover business outcomes a status
// alone cannot convey (e.g. a canned reply that could not be delivered).
package handlers

const (
	ErrCodeBadRequest  = "bad_request"
	ErrCodeForbidden   = "forbidden"
	ErrCodeNotFound    = "not_found"
	ErrCodeConflict    = "conflict"
	ErrCodeRateLimited = "too_many_requests"
	ErrCodeInternal    = "internal_error"

	// Domain-specific:
	ErrCodeSearchFailed     = "search_failed"
	ErrCodeIngestFailed     = "ingest_failed"
	ErrCodeGrantFailed      = "grant_failed"
	ErrCodeDeliveryFailed   = "delivery_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
