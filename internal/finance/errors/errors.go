package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}

// AuthorizationError means the resource exists but belongs to another user.
// Callers must be able to tell it apart from NotFoundError.
type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string {
	return e.Msg
}

func NewAuthorizationError(msg string) error {
	return &AuthorizationError{Msg: msg}
}

func IsAuthorizationError(err error) bool {
	var authorizationError *AuthorizationError
	return errors.As(err, &authorizationError)
}

// ProtectedResourceError rejects deletion of default accounts and fallback
// categories, regardless of who asks.
type ProtectedResourceError struct {
	Msg string
}

func (e *ProtectedResourceError) Error() string {
	return e.Msg
}

func NewProtectedResourceError(msg string) error {
	return &ProtectedResourceError{Msg: msg}
}

func IsProtectedResourceError(err error) bool {
	var protectedResourceError *ProtectedResourceError
	return errors.As(err, &protectedResourceError)
}

// StoreError wraps a failed call to the underlying store. It is transient
// from the caller's point of view and maps to 503 at the HTTP boundary.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func IsStoreError(err error) bool {
	var storeError *StoreError
	return errors.As(err, &storeError)
}

var ErrInvalidCategory = NewValidationError("Invalid category")
