package domain

import (
	"errors"
	"fmt"
)

type ErrCode string

const (
	CodeValidation   ErrCode = "validation_error"
	CodeNotFound     ErrCode = "not_found"
	CodeConflict     ErrCode = "conflict"
	CodeStoreFailure ErrCode = "store_failure"
)

type AppError struct {
	Code    ErrCode
	Message string
	Meta    map[string]string
	Err     error
}

func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if len(e.Meta) > 0 {
		msg = fmt.Sprintf("%s (%v)", msg, e.Meta)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *AppError) Unwrap() error { return e.Err }

func ErrValidation(msg string) error { return &AppError{Code: CodeValidation, Message: msg} }
func ErrValidationMeta(msg string, meta map[string]string) error {
	return &AppError{Code: CodeValidation, Message: msg, Meta: meta}
}
func ErrNotFound(msg string) error { return &AppError{Code: CodeNotFound, Message: msg} }
func ErrConflict(msg string) error { return &AppError{Code: CodeConflict, Message: msg} }

// ErrStore wraps an infrastructure failure. The cause stays reachable through errors.Is/As
// but is never rendered to clients.
func ErrStore(op string, err error) error {
	return &AppError{Code: CodeStoreFailure, Message: op, Err: err}
}

// CodeOf returns the code of the first AppError in err's chain, or "" if there is none.
func CodeOf(err error) ErrCode {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// DuplicateError is returned by data stores when a write violates a uniqueness
// constraint other than the primary key.
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("duplicate value for %s", e.Field)
	}
	return fmt.Sprintf("duplicate value for %s: %q", e.Field, e.Value)
}

func IsDuplicate(err error) (*DuplicateError, bool) {
	var de *DuplicateError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
