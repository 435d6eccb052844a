package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrItemNotFound           = errors.New("wardrobe item not found")
	ErrEmptyWardrobe          = errors.New("wardrobe has no items")
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrVersionConflict        = errors.New("preference version conflict")
	ErrWeatherUnavailable     = errors.New("weather provider unavailable")
)

// ValidationError signals malformed preference or weather input; a
// recommendation is not attempted when one is raised.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
