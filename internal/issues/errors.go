package issues

import "errors"

var (
	// ErrNoInput is returned when a submission carries no media and no text.
	ErrNoInput = errors.New("at least one of image, video, audio, or description is required")
	// ErrVideoTooLarge is returned before any request is built when the video
	// payload exceeds the configured ceiling.
	ErrVideoTooLarge = errors.New("video exceeds size limit")
	// ErrInvalidLocation is returned when coordinates are out of range.
	ErrInvalidLocation = errors.New("location coordinates are invalid")
	// ErrParse marks a model response that is not valid JSON or is missing
	// required fields. Never retried; no partial result is produced.
	ErrParse = errors.New("analysis response failed validation")
	// ErrUnavailable marks any transport, auth, or quota failure from the
	// inference backend. Never retried.
	ErrUnavailable = errors.New("analysis unavailable")
	// ErrAnalysisInFlight is returned while a session already has a request
	// in flight.
	ErrAnalysisInFlight = errors.New("analysis already in flight for session")
	// ErrSessionNotFound is returned for unknown session IDs.
	ErrSessionNotFound = errors.New("session not found")
)

// Error codes for the standardized error envelope.
const (
	ErrorCodeValidation  = "validation_error"
	ErrorCodeMediaSize   = "media_too_large"
	ErrorCodeInFlight    = "analysis_in_flight"
	ErrorCodeNotFound    = "session_not_found"
	ErrorCodeUnavailable = "analysis_unavailable"
)

// UnavailableMessage is the single user-facing message for every backend
// failure kind, so no provider detail leaks to the browser.
const UnavailableMessage = "Analysis unavailable. Please try again."
