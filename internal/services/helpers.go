package services

import (
	"errors"
	"fmt"
	"time"

	"applytrack-api/internal/storage"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD wire date. Failures surface as validation
// errors so handlers map them to 400, not 500.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", ErrValidation, field)
	}
	return t, nil
}

// mapRepoError translates storage errors into service errors, wrapping
// anything unexpected with context for the log.
func mapRepoError(err error, contextMsg string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("internal error %s: %w", contextMsg, err)
}
