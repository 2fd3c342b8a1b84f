package wizard

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrUnknownItem      = errors.New("unknown catalog item")
	ErrSpaceUnavailable = errors.New("space is not available")
	ErrInvalidHour      = errors.New("hour must be between 0 and 23")
	ErrInvalidMode      = errors.New("invalid booking mode")
	ErrInvalidDate      = errors.New("invalid date")
	ErrNotAtContactStep = errors.New("submission is only possible at the contact step")
	ErrAlreadySubmitted = errors.New("session already submitted")
	ErrSubmitInFlight   = errors.New("a submission is already in progress")
	ErrSubmissionFailed = errors.New("submission failed")
)

// ValidationError carries the field errors of a failed step gate or contact
// check. It never aborts anything beyond the failing call; the user corrects
// and retries with no data loss.
type ValidationError struct {
	Step   Step              `json:"step"`
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d validation failed: %v", e.Step, e.Fields)
}
