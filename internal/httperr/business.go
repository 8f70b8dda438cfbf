package httperr

import (
	"errors"
	"net/http"
)

// ===============================
// Error kinds
// ===============================

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindInvalidReference
	KindInvalidTransition
)

func (k Kind) Status() int {
	switch k {
	case KindInvalidInput, KindInvalidReference, KindInvalidTransition:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ===============================
// Business error
// ===============================

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Fields  []string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func newErr(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func InvalidInput(code, message string, fields ...string) error {
	return BusinessError{Kind: KindInvalidInput, Code: code, Message: message, Fields: fields}
}

func Unauthenticated(code, message string) error {
	return newErr(KindUnauthenticated, code, message)
}

func Forbidden(code, message string) error {
	return newErr(KindForbidden, code, message)
}

func NotFound(code, message string) error {
	return newErr(KindNotFound, code, message)
}

func Conflict(code, message string) error {
	return newErr(KindConflict, code, message)
}

func InvalidReference(code, message string) error {
	return newErr(KindInvalidReference, code, message)
}

func InvalidTransition(code, message string) error {
	return newErr(KindInvalidTransition, code, message)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf returns KindInternal for anything that is not a BusinessError.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
