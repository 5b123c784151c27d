// Package apperror classifies failures so handlers can map them to HTTP
// statuses without leaking database or search-engine internals.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	// KindValidation is missing or malformed input; nothing was written.
	KindValidation Kind = iota + 1
	// KindNotFound means the referenced entity does not exist.
	KindNotFound
	// KindDependency is a database or search index failure.
	KindDependency
	// KindTransaction is a failure after a transaction began; it was rolled back.
	KindTransaction
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindDependency:
		return "dependency"
	case KindTransaction:
		return "transaction"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	// Msg is safe to show to clients.
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Dependency wraps a failing database/search call. op names the operation for logs.
func Dependency(op string, err error) error {
	return &Error{Kind: KindDependency, Msg: "Server error", Err: fmt.Errorf("%s: %w", op, err)}
}

func Transaction(op string, err error) error {
	return &Error{Kind: KindTransaction, Msg: "Server error", Err: fmt.Errorf("%s: %w", op, err)}
}

// KindOf reports the Kind of err, treating unclassified errors as dependency failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindDependency
}

func Is(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the client-facing text for err.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	return "Server error"
}
