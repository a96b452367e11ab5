package util

import "fmt"

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a referenced id that does not exist.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func NotFoundErr(resource string, id uint) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// CapacityError reports the 4-option cap being exceeded.
type CapacityError struct {
	Msg string
}

func (e *CapacityError) Error() string { return e.Msg }

func Capacityf(format string, args ...interface{}) error {
	return &CapacityError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError reports a duplicate correct answer, duplicate label, or
// duplicate container order.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func Conflictf(format string, args ...interface{}) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// UploadError reports a file rejected by type/size policy or a storage failure.
type UploadError struct {
	Msg string
}

func (e *UploadError) Error() string { return e.Msg }

func Uploadf(format string, args ...interface{}) error {
	return &UploadError{Msg: fmt.Sprintf(format, args...)}
}

// AuthError reports an expired or invalid token, or bad credentials.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

func Authf(format string, args ...interface{}) error {
	return &AuthError{Msg: fmt.Sprintf(format, args...)}
}
