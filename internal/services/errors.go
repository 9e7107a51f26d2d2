// Package services defines the business logic for catalog ingestion,
// entitlements, search gating, and the operator feedback workflow. This
// file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; the
// dispatcher and HTTP handlers translate them into user-facing messages or
// HTTP status codes.
package services

import "errors"

var (
	// ErrInvalidGrant is returned when a grant request carries a
	// non-positive duration. It is a caller-facing usage error and never
	// mutates the store.
	ErrInvalidGrant = errors.New("grant duration must be a positive number of days")

	// ErrNotOperator is returned when anyone other than the designated
	// operator tries to resolve a feedback incident or run an admin
	// action. The state is left untouched.
	ErrNotOperator = errors.New("not the designated operator")

	// ErrFeedbackNotFound indicates that the referenced feedback incident
	// does not exist.
	ErrFeedbackNotFound = errors.New("feedback not found")

	// ErrFeedbackResolved indicates the incident was already resolved;
	// resolution is a one-shot transition.
	ErrFeedbackResolved = errors.New("feedback already resolved")

	// ErrDeliveryFailed wraps a notification failure. The workflow still
	// resolves, but the operator must see this outcome distinctly from a
	// success acknowledgment.
	ErrDeliveryFailed = errors.New("could not deliver message to requester")
)
