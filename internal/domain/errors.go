package domain

import (
	"errors"
)

type ErrorKind int

const (
	ErrKindNotFound ErrorKind = iota
	ErrKindBadRequest
	ErrKindConflict
)

// Error is a caller-facing failure with an HTTP-mappable kind. Messages are
// stable: clients display them verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewNotFound(message string) *Error {
	return &Error{Kind: ErrKindNotFound, Message: message}
}

func NewBadRequest(message string) *Error {
	return &Error{Kind: ErrKindBadRequest, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Kind: ErrKindConflict, Message: message}
}

func IsNotFound(err error) bool {
	return isKind(err, ErrKindNotFound)
}

func IsBadRequest(err error) bool {
	return isKind(err, ErrKindBadRequest)
}

func IsConflict(err error) bool {
	return isKind(err, ErrKindConflict)
}

func isKind(err error, kind ErrorKind) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind == kind
	}
	return false
}
