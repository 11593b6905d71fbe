package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/raja-bazar/makhtab-admin-service/internal/store"
)

// ErrInvalidCredentials is the single failure returned for every login
// problem: unknown account, wrong password, disabled teacher or bad OTP.
// Collapsing them prevents account enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotAuthenticated indicates no session exists.
var ErrNotAuthenticated = errors.New("not authenticated")

// ValidationError reports a request that failed a business rule. Nothing
// is mutated when one is returned.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func NewValidationError(field, message string, value any) *ValidationError {
	return &ValidationError{Field: field, Message: message, Value: value}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError reports a lookup by identity that matched nothing.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func IsNotFoundError(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// PermissionError reports an action the current session role may not take.
type PermissionError struct {
	UserID   string
	Resource string
	Action   string
	Reason   string
}

func NewPermissionError(userID, resource, action, reason string) *PermissionError {
	return &PermissionError{UserID: userID, Resource: resource, Action: action, Reason: reason}
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("user %s may not %s %s: %s", e.UserID, e.Action, e.Resource, e.Reason)
}

func IsPermissionError(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}

// collectionOrEmpty reads a corrupt stored collection as empty with a
// logged warning; any other error propagates. Dashboards and overviews
// use it so one damaged blob does not take down the whole view.
func collectionOrEmpty[T any](logger *slog.Logger, name string, records []T, err error) ([]T, error) {
	if err == nil {
		return records, nil
	}
	if errors.Is(err, store.ErrCorruptRecord) {
		logger.Warn("corrupt collection read as empty", "collection", name, "error", err)
		return []T{}, nil
	}
	return nil, fmt.Errorf("list %s: %w", name, err)
}
