package parsing

import "fmt"

// ServiceError represents a failure of the external generative service
// (network, auth, rate limit). It is recovered locally by the fallback
// policy and never propagates past the composer boundary.
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generative service failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generative service failed: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// ParseError represents malformed or absent JSON in a model response. Like
// ServiceError it is recovered locally, never raised to the user.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse failure: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse failure: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
