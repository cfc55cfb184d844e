package assimp

import (
	"fmt"
	"strings"
)

// ErrorKind identifies the category of an assimp binding error.
type ErrorKind string

const (
	ErrorKindUnknown         ErrorKind = "unknown"
	ErrorKindValidation      ErrorKind = "validation"
	ErrorKindImportRejected  ErrorKind = "import_rejected"
	ErrorKindUnexpectedFault ErrorKind = "unexpected_fault"
	ErrorKindCanceled        ErrorKind = "canceled"
	ErrorKindCallback        ErrorKind = "callback"
	ErrorKindReleased        ErrorKind = "released"
)

// Native error codes reported by assimp_shim_get_last_error_code.
const (
	nativeCodeOK              = 0
	nativeCodeImportRejected  = 1
	nativeCodeUnexpectedFault = 2
)

// AssimpError is implemented by all custom error types returned by the binding.
type AssimpError interface {
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

type ValidationError struct {
	baseError
}

// ImportRejectedError means the library ran and declined the file: missing
// path, unsupported or corrupt content, failed validation.
type ImportRejectedError struct {
	baseError
	Path string
}

// UnexpectedFaultError means an exception escaped the importer.
type UnexpectedFaultError struct {
	baseError
	Path string
}

// CanceledError is returned when the progress callback asked the import to stop.
type CanceledError struct {
	baseError
}

// CallbackError wraps a panic raised inside a progress callback.
type CallbackError struct {
	baseError
	Value any
}

type ReleasedError struct {
	baseError
}

type RuntimeError struct {
	baseError
}

func makeBaseError(kind ErrorKind, message string, cause error) baseError {
	return baseError{
		kind:    kind,
		message: formatErrorMessageWithCause(message, cause),
		cause:   cause,
	}
}

func newValidationError(message string, cause error) *ValidationError {
	return &ValidationError{baseError: makeBaseError(ErrorKindValidation, message, cause)}
}

func newImportRejectedError(path string, message string, cause error) *ImportRejectedError {
	return &ImportRejectedError{
		baseError: makeBaseError(ErrorKindImportRejected, messageWithFallback(message, fmt.Sprintf("failed to import %s", path)), cause),
		Path:      path,
	}
}

func newUnexpectedFaultError(path string, message string, cause error) *UnexpectedFaultError {
	return &UnexpectedFaultError{
		baseError: makeBaseError(ErrorKindUnexpectedFault, messageWithFallback(message, "Unknown error"), cause),
		Path:      path,
	}
}

func newCanceledError(message string, cause error) *CanceledError {
	return &CanceledError{baseError: makeBaseError(ErrorKindCanceled, message, cause)}
}

func newCallbackError(value any) *CallbackError {
	var cause error
	if err, ok := value.(error); ok {
		cause = err
	}
	msg := "progress callback panicked"
	if cause == nil {
		msg = fmt.Sprintf("progress callback panicked: %v", value)
	}
	return &CallbackError{
		baseError: makeBaseError(ErrorKindCallback, msg, cause),
		Value:     value,
	}
}

func newReleasedError(message string) *ReleasedError {
	return &ReleasedError{baseError: makeBaseError(ErrorKindReleased, message, nil)}
}

func newRuntimeError(message string, cause error) *RuntimeError {
	return &RuntimeError{baseError: makeBaseError(ErrorKindUnknown, message, cause)}
}

func messageWithFallback(message string, fallback string) string {
	trimmed := strings.TrimSpace(message)
	if trimmed != "" {
		return trimmed
	}
	return fallback
}

func formatErrorMessageWithCause(message string, cause error) string {
	msg := formatErrorMessage(message)
	if cause != nil {
		return fmt.Sprintf("%s: %v", msg, cause)
	}
	return msg
}

func formatErrorMessage(message string) string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		trimmed = "unknown error"
	}
	if strings.HasPrefix(strings.ToLower(trimmed), "assimp:") {
		return trimmed
	}
	return "assimp: " + trimmed
}

// classifyNativeError turns the shim's per-thread slot and code into a typed error.
func classifyNativeError(path string, message string, code int) error {
	trimmed := strings.TrimSpace(message)

	switch code {
	case nativeCodeImportRejected:
		return newImportRejectedError(path, trimmed, nil)
	case nativeCodeUnexpectedFault:
		return newUnexpectedFaultError(path, trimmed, nil)
	}

	if trimmed == "" {
		return newRuntimeError("unknown error", nil)
	}
	return newRuntimeError(trimmed, nil)
}
