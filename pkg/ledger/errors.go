package ledger

import (
	"errors"
	"fmt"

	"github.com/taya-finance/backend/pkg/models"
)

// Kind classifies why an operation failed.
type Kind uint8

const (
	Internal         Kind = iota // Unexpected failure, e.g. the database is not available
	NotFound                     // The ID does not resolve to a resource
	ValidationFailed             // The input is malformed or violates a constraint
	Conflict                     // The write conflicts with existing data
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case ValidationFailed:
		return "ValidationFailed"
	case Conflict:
		return "Conflict"
	default:
		return "Internal"
	}
}

// Error is returned by all ledger operations.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates a new *Error of the specified kind.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap wraps err with the specified kind. If err is nil, nil is returned.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind of the error. Errors that did not
// originate in the ledger are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return Internal
}

// classify converts an error returned by the store into an *Error.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return err
	}

	switch {
	case errors.Is(err, models.ErrResourceNotFound):
		return Wrap(NotFound, err)
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrCategoryDoesNotExist):
		return Wrap(ValidationFailed, err)
	case errors.Is(err, models.ErrCategoryNameNotUnique), errors.Is(err, models.ErrCategoryInUse):
		return Wrap(Conflict, err)
	default:
		return Wrap(Internal, err)
	}
}
