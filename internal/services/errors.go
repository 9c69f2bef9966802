package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrValidation is returned before any store call when input is rejected.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned when an operation targets a non-existent id.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable is returned when the store cannot complete a call.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// storeErr translates repository errors into the service sentinels.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
