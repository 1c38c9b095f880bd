package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies business-rule failures so the transport layer can map them to a response.
type Kind int

// Error kinds raised by the service layer.
const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindValidation
)

// Machine-checkable error codes.
const (
	CodeNotFound          = "RESOURCE_NOT_FOUND"
	CodeValidation        = "VALIDATION_FAILED"
	CodeReviewGroupExists = "REVIEW_GROUP_EXISTS"
	CodeCriteriaExists    = "CRITERIA_EXISTS"
)

// Sentinels for errors.Is checks against any *Error of the matching kind.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// Error is a caller-facing failure. It is never retried.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the package sentinels by kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrConflict:
		return e.Kind == KindConflict
	case ErrValidation:
		return e.Kind == KindValidation
	}
	return false
}

// NotFound reports that resource has no record with the given id.
func NotFound(resource string, id uint) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found with id: %d", resource, id),
	}
}

// Conflict reports that a uniqueness constraint would be violated.
func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// Validation reports malformed or missing input. cause may be nil.
func Validation(message string, cause error) *Error {
	return &Error{Kind: KindValidation, Code: CodeValidation, Message: message, Err: cause}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
