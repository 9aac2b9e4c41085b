package probe

import (
	"context"

	"github.com/hamed0406/apphealth/internal/domain"
)

// Checker performs a single check for a resolved request.
type Checker interface {
	Check(ctx context.Context, req domain.ProbeRequest) domain.ProbeResult
}
