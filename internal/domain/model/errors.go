package model

import (
	"errors"
	"fmt"
)

const (
	ReferenceLocation = "location"
	ReferenceAPIUser  = "api_user"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrReferenceNotFound = errors.New("referenced entity not found")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrStore             = errors.New("store error")
	ErrInvalidID         = errors.New("invalid id")

	ErrDeviceNotFound   = fmt.Errorf("device %w", ErrNotFound)
	ErrLocationNotFound = fmt.Errorf("location %w", ErrNotFound)
	ErrAPIUserNotFound  = fmt.Errorf("api user %w", ErrNotFound)

	ErrDuplicateEmail = fmt.Errorf("%w: api user email already exists", ErrDuplicateKey)
)

// ReferenceNotFoundError names the foreign key of a device that did not
// resolve to an existing row.
type ReferenceNotFoundError struct {
	Reference string
	ID        int64
}

func NewReferenceNotFoundError(reference string, id int64) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{Reference: reference, ID: id}
}

func (e *ReferenceNotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Reference)
	}

	return fmt.Sprintf("%s %d not found", e.Reference, e.ID)
}

func (e *ReferenceNotFoundError) Is(target error) bool {
	return target == ErrReferenceNotFound
}

type ValidationError struct {
	Field   string
	Message string
	Code    string
}

type ValidationErrors struct {
	Errors []ValidationError
}

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]ValidationError, 0),
	}
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return ErrValidation.Error()
	}

	return v.Errors[0].Message
}

func (v *ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

func (v *ValidationErrors) Add(field, message, code string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
		Code:    code,
	})
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}
