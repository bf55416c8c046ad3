package translate

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// FailureKind classifies an upstream failure. The HTTP boundary still
// collapses every kind to one generic status; the kind feeds logs and the
// upstream-failure metric so the mapping can be tightened later without
// touching the service.
type FailureKind string

const (
	KindAuthentication FailureKind = "authentication"
	KindQuota          FailureKind = "quota"
	KindRateLimit      FailureKind = "rate_limit"
	KindTransient      FailureKind = "transient_network"
	KindUnknown        FailureKind = "unknown_upstream"
)

// UpstreamError wraps a provider failure with its classified kind.
// Error returns the underlying message unadorned so the caller-facing
// detail field carries exactly what the provider said.
type UpstreamError struct {
	Kind FailureKind
	Err  error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Classify maps a raw provider error to its FailureKind.
func Classify(err error) FailureKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindTransient
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindTransient
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if code, ok := apiErr.Code.(string); ok && code == "insufficient_quota" {
			return KindQuota
		}
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return KindAuthentication
		case http.StatusTooManyRequests:
			return KindRateLimit
		}
		if apiErr.HTTPStatusCode >= 500 {
			return KindTransient
		}
		return KindUnknown
	}

	// Some SDK paths surface the quota condition only in the message.
	if strings.Contains(err.Error(), "insufficient_quota") {
		return KindQuota
	}

	return KindUnknown
}
