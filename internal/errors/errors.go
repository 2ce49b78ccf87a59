package errors

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Kind classifies operation failure
type Kind int

const (
	// KindInternal means store or other unexpected failure
	KindInternal Kind = iota
	// KindValidation means client sent missing or empty data
	KindValidation
	// KindNotFound means no entry matches provided id
	KindNotFound
)

// Status returns http status corresponding to kind
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is failed operation outcome, message is safe to be shown to client
type Error struct {
	kind    Kind
	message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + " - " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns underlying cause
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns error kind
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns client message
func (e *Error) Message() string {
	return e.message
}

// Status returns http status
func (e *Error) Status() int {
	return e.kind.Status()
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}{Status: e.Status(), Message: e.message})
}

// NewValidationErr builds validation error
func NewValidationErr(msg string) *Error {
	return &Error{kind: KindValidation, message: msg}
}

// NewNotFoundErr builds not found error
func NewNotFoundErr(msg string) *Error {
	return &Error{kind: KindNotFound, message: msg}
}

// NewInternalErr builds internal error, cause is kept for logs only
func NewInternalErr(msg string, cause error) *Error {
	return &Error{kind: KindInternal, message: msg, cause: cause}
}

// As reports whether err chain contains *Error and returns it
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
