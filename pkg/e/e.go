package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDeadline     = errors.New("deadline exceeded")
	ErrCanceled     = errors.New("context canceled")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrDisabled     = errors.New("feature disabled")
	ErrQueueEmpty   = errors.New("event queue is empty")
	ErrDraftClosed  = errors.New("draft is not open")

	ErrEmptyDescription   = errors.New("description is empty")
	ErrEmptyLocation      = errors.New("location is empty")
	ErrInvalidStatus      = errors.New("invalid traffic status")
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	ErrLocationUnavailable   = errors.New("location unavailable")
	ErrSummarizerUnavailable = errors.New("summarizer unavailable")
	ErrMalformedExtraction   = errors.New("malformed external extraction")
)

// ValidationError ties a rejected draft field to one of the validation sentinels.
type ValidationError struct {
	Field string
	Err   error
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", v.Field, v.Err)
}

func (v *ValidationError) Unwrap() error { return v.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}
