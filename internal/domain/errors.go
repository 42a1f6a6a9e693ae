package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation signals a request that failed input validation.
	ErrValidation = errors.New("validation failed")
	// ErrPromptEmpty signals a missing or empty prompt.
	ErrPromptEmpty = fmt.Errorf("%w: prompt is required", ErrValidation)
	// ErrPromptTooLong signals a prompt above the configured length.
	ErrPromptTooLong = fmt.Errorf("%w: prompt too long", ErrValidation)
	// ErrNotFound signals an unknown route or resource.
	ErrNotFound = errors.New("not found")
)
