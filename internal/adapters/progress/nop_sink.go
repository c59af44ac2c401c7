package progress

import (
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// NewNopSink creates a progress sink that discards everything
func NewNopSink() usecase.ProgressSink {
	return usecase.NopProgress{}
}
