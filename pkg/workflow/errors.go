// Package workflow provides the durable DAG execution runtime: definitions,
// planning, step scheduling, sub-task fan-out, and observability channels.
package workflow

import (
	"errors"
	"fmt"
)

// ErrorKind classifies step and workflow failures for retry and reporting.
type ErrorKind string

// Error kinds, from recoverable to fatal.
const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindTransient  ErrorKind = "transient"
	KindPermanent  ErrorKind = "permanent"
	KindFatal      ErrorKind = "fatal"
)

// ValidationError indicates an invalid workflow graph or invalid inputs.
// It is raised before any step runs and leaves no database state.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return "validation error: " + e.Message }

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError indicates a workflow, document, or claim lookup failure.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// NewNotFoundError creates a NotFoundError for the given resource and id.
func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// StepError wraps a step failure with its kind so the runner can decide
// whether to retry.
type StepError struct {
	Kind ErrorKind
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("%s: %v", e.Kind, e.Err) }
func (e *StepError) Unwrap() error { return e.Err }

// Transient wraps an error as retryable (network timeout, rate limit, deadlock).
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &StepError{Kind: KindTransient, Err: err}
}

// Permanent wraps an error as non-retryable (bad resource, 4xx, malformed input).
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &StepError{Kind: KindPermanent, Err: err}
}

// Fatal wraps an error as corrupted-state; the workflow fails immediately.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &StepError{Kind: KindFatal, Err: err}
}

// KindOf returns the classified kind of an error, defaulting to permanent.
func KindOf(err error) ErrorKind {
	var se *StepError
	if errors.As(err, &se) {
		return se.Kind
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return KindNotFound
	}
	return KindPermanent
}

// IsTransient reports whether err should be retried with backoff.
func IsTransient(err error) bool {
	return KindOf(err) == KindTransient
}

// IsValidation reports whether err is a pre-execution validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a lookup failure.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
