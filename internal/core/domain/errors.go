package domain

import "fmt"

type ErrorKind string

const (
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindConflict   ErrorKind = "conflict"
	ErrorKindNotFound   ErrorKind = "not_found"
	ErrorKindNotAllowed ErrorKind = "not_allowed"
	ErrorKindInternal   ErrorKind = "internal"
)

// Error is the tagged failure value every mutation and query returns to
// the layer above. About and Solution are relayed verbatim to clients.
type Error struct {
	Kind     ErrorKind
	About    string
	Solution string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.About, e.Solution)
}

func NewValidationError(about, solution string) *Error {
	return &Error{Kind: ErrorKindValidation, About: about, Solution: solution}
}

func NewConflictError(about, solution string) *Error {
	return &Error{Kind: ErrorKindConflict, About: about, Solution: solution}
}

func NewNotFoundError(about, solution string) *Error {
	return &Error{Kind: ErrorKindNotFound, About: about, Solution: solution}
}

func NewNotAllowedError(about, solution string) *Error {
	return &Error{Kind: ErrorKindNotAllowed, About: about, Solution: solution}
}

func NewInternalError(about, solution string) *Error {
	return &Error{Kind: ErrorKindInternal, About: about, Solution: solution}
}

// AsError reports the kind of a returned error, ErrorKindInternal for
// anything that is not a tagged domain error.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*Error); ok {
		return domainErr
	}
	return NewInternalError(
		"Internal error!",
		"There's a internal problem, please contact the system administrator",
	)
}
