package fitz

import (
	"fmt"
	"strings"
)

// ErrorKind identifies the category of an error returned by this package.
type ErrorKind string

const (
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindEngine     ErrorKind = "engine"
	ErrorKindInternal   ErrorKind = "internal"
)

// FitzError is implemented by all custom error types returned by the binding.
type FitzError interface {
	error
	Kind() ErrorKind
}

type baseError struct {
	kind    ErrorKind
	message string
	cause   error
}

func (e *baseError) Error() string {
	return e.message
}

func (e *baseError) Kind() ErrorKind {
	return e.kind
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// ValidationError reports a missing or unusable argument. The engine was not
// consulted and no diagnostic is available.
type ValidationError struct {
	baseError
}

// EngineError reports an exception raised inside MuPDF. Diagnostic holds the
// engine message, truncated to the diagnostic buffer capacity.
type EngineError struct {
	baseError
	Diagnostic string
}

// InternalError reports a failure of the binding itself, such as context
// allocation returning nothing.
type InternalError struct {
	baseError
}

func makeBaseError(kind ErrorKind, message string, cause error) baseError {
	return baseError{
		kind:    kind,
		message: formatErrorMessage(message, cause),
		cause:   cause,
	}
}

func newValidationError(message string, cause error) *ValidationError {
	return &ValidationError{baseError: makeBaseError(ErrorKindValidation, message, cause)}
}

func newEngineError(message string, diagnostic string) *EngineError {
	full := message
	if diagnostic != "" {
		full = fmt.Sprintf("%s: %s", message, diagnostic)
	}
	return &EngineError{
		baseError:  makeBaseError(ErrorKindEngine, full, nil),
		Diagnostic: diagnostic,
	}
}

func newInternalError(message string, cause error) *InternalError {
	return &InternalError{baseError: makeBaseError(ErrorKindInternal, message, cause)}
}

func formatErrorMessage(message string, cause error) string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		trimmed = "unknown error"
	}
	if !strings.HasPrefix(trimmed, "fitz: ") {
		trimmed = "fitz: " + trimmed
	}
	if cause != nil {
		return fmt.Sprintf("%s: %v", trimmed, cause)
	}
	return trimmed
}
