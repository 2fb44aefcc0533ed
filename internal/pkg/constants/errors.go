package constants

import "net/http"

// CodedError carries the HTTP status the central error handler should use.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound         = NewCodedError("not found", http.StatusNotFound)
	ErrGerbangNotFound    = NewCodedError("gerbang not found", http.StatusNotFound)
	ErrGerbangExists      = NewCodedError("gerbang already exists", http.StatusConflict)
	ErrUnauthorized       = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrMissingAuthCookie  = NewCodedError("missing auth cookie", http.StatusUnauthorized)
	ErrInvalidCredentials = NewCodedError("invalid email or password", http.StatusUnauthorized)
	ErrEmailAlreadyTaken  = NewCodedError("email already taken", http.StatusConflict)
	ErrBadRequest         = NewCodedError("bad request", http.StatusBadRequest)
)
