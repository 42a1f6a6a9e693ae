package sage

import (
	"github.com/kailas-cloud/sage/internal/domain"
	"github.com/kailas-cloud/sage/internal/domain/corpus"
	"github.com/kailas-cloud/sage/internal/domain/tone"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrValidation      = domain.ErrValidation
	ErrPromptEmpty     = domain.ErrPromptEmpty
	ErrPromptTooLong   = domain.ErrPromptTooLong
	ErrInvalidTone     = tone.ErrInvalidTone
	ErrDuplicateSource = corpus.ErrDuplicateSource
)
