package client

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/diradmin/internal/logging"
	"github.com/google/uuid"
)

// Transport decorates every outbound request with the fixed header set and
// the current session token, then hands it to the base RoundTripper.
type Transport struct {
	base    http.RoundTripper
	headers Headers
	tokens  TokenSource
	logger  logging.Logger
}

// NewTransport wraps base. A nil base means http.DefaultTransport; a nil
// token source means requests are sent without Authorization.
func NewTransport(base http.RoundTripper, headers Headers, tokens TokenSource, logger logging.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, headers: headers, tokens: tokens, logger: logger}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	r := req.Clone(req.Context())

	var token string
	if t.tokens != nil {
		token, _ = t.tokens.Token()
	}
	Decorate(r.Header, t.headers, token)

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := t.base.RoundTrip(r)

	if t.logger != nil {
		ctx := req.Context()
		if err != nil {
			t.logger.Debug(ctx, "api request failed", "request_id", requestID,
				"method", r.Method, "path", r.URL.Path, "error", err.Error())
		} else {
			t.logger.Debug(ctx, "api request", "request_id", requestID,
				"method", r.Method, "path", r.URL.Path, "status", resp.StatusCode,
				"elapsed", time.Since(start))
		}
	}
	return resp, err
}
