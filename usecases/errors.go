package usecases

import (
	"errors"
	"strings"
)

// Sentinel errors the handlers map onto HTTP statuses. Messages match the
// public API contract verbatim.
var (
	ErrUserExists         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUserNotFound       = errors.New("User not found")
	ErrPlanNotFound       = errors.New("Meal plan not found")
	ErrNotPlanOwner       = errors.New("User not authorized")
	ErrMissingFields      = errors.New("Missing required fields")
)

// FieldError is one field-level validation message.
type FieldError struct {
	Msg string `json:"msg"`
}

// ValidationErrors collects every failing field check of an operation, in
// check order. Validation does not short-circuit: a request with three bad
// fields reports all three.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Msg
	}
	return strings.Join(msgs, "; ")
}
