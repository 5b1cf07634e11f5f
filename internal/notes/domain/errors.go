package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure for the caller.
type Kind int

const (
	KindInternal Kind = iota
	KindAuthentication
	KindAuthorization
	KindValidation
	KindNotFound
	KindLimitExceeded
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "AuthenticationError"
	case KindAuthorization:
		return "AuthorizationError"
	case KindValidation:
		return "ValidationError"
	case KindNotFound:
		return "NotFoundError"
	case KindLimitExceeded:
		return "LimitExceededError"
	case KindConflict:
		return "ConflictError"
	default:
		return "InternalError"
	}
}

// HTTPStatus is the response code a failure of kind k maps to.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization, KindLimitExceeded:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a failure with a message that is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches another *Error of the same kind and message, so sentinel
// values work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Message == e.Message
}

func NewError(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

func Unauthenticated(msg string) *Error { return NewError(KindAuthentication, msg) }
func Forbidden(msg string) *Error       { return NewError(KindAuthorization, msg) }
func Invalid(msg string) *Error         { return NewError(KindValidation, msg) }
func NotFound(msg string) *Error        { return NewError(KindNotFound, msg) }
func LimitExceeded(msg string) *Error   { return NewError(KindLimitExceeded, msg) }
func Conflict(msg string) *Error        { return NewError(KindConflict, msg) }

// Invalidf formats a ValidationError message.
func Invalidf(format string, args ...any) *Error {
	return Invalid(fmt.Sprintf(format, args...))
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal for anything untyped.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// PublicMessage is the client-facing text for err.
func PublicMessage(err error) string {
	var de *Error
	if errors.As(err, &de) && de.Kind != KindInternal {
		return de.Message
	}
	return "Internal server error"
}
