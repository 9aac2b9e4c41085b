package probe

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hamed0406/apphealth/internal/domain"
)

var _ Checker = (*HTTPChecker)(nil)

type HTTPChecker struct {
	Client *http.Client
}

// NewHTTPChecker leaves redirects, proxies and TLS verification at the
// net/http defaults. The deadline comes from each request.
func NewHTTPChecker() *HTTPChecker {
	return &HTTPChecker{
		Client: &http.Client{},
	}
}

// Check issues exactly one GET. It never returns an error: anything that
// prevents a response becomes a Failure on the result.
func (h *HTTPChecker) Check(ctx context.Context, req domain.ProbeRequest) domain.ProbeResult {
	if req.TimeoutSeconds <= 0 {
		return failed(domain.FailureInvalidRequest,
			fmt.Errorf("invalid timeout %d: must be a positive number of seconds", req.TimeoutSeconds), 0)
	}

	ctx, cancel := context.WithTimeout(ctx, req.Timeout())
	defer cancel()

	start := time.Now()
	hreq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return failed(domain.FailureInvalidRequest, err, 0)
	}

	resp, err := h.Client.Do(hreq)
	latency := time.Since(start)
	if err != nil {
		return failed(classify(err), err, latency)
	}
	defer resp.Body.Close()

	return domain.ProbeResult{StatusCode: resp.StatusCode, Latency: latency}
}

func failed(kind domain.FailureKind, err error, latency time.Duration) domain.ProbeResult {
	return domain.ProbeResult{
		Failure: &domain.Failure{Kind: kind, Err: err},
		Latency: latency,
	}
}
