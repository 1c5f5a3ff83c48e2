package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/harunnryd/speechline-go/pkg/errorsx"
)

const defaultRetryBackoff = 200 * time.Millisecond

// retryable reports whether a failed request is safe and worth repeating:
// transport-level failures and throttling or server-side statuses.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusTooManyRequests || apiErr.Status >= 500
	}
	var unknown *UnknownAPIError
	if errors.As(err, &unknown) {
		return unknown.Status == http.StatusTooManyRequests || unknown.Status >= 500
	}
	return errorsx.HasReason(err, errorsx.ReasonRESTRequest)
}

// backoffWait sleeps for the attempt's doubling backoff, honoring ctx.
func backoffWait(ctx context.Context, base time.Duration, attempt int) error {
	if base <= 0 {
		base = defaultRetryBackoff
	}
	delay := base << (attempt - 1)
	select {
	case <-ctx.Done():
		return errorsx.Wrap(ctx.Err(), errorsx.ReasonRESTRequest)
	case <-time.After(delay):
		return nil
	}
}
