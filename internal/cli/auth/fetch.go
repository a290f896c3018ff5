package auth

import (
	"context"
	"errors"
	"io"
	"net/http"

	"TokenKeeper/internal/cli/repo"
)

// RequestOptions configures FetchWithAuth. Headers is updated in place.
type RequestOptions struct {
	Method  string
	Headers http.Header
	Body    io.Reader
}

// sensitive headers are never logged verbatim
var sensitiveHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
}

func redactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		if sensitiveHeaders[k] {
			out[k] = "REDACTED"
			continue
		}
		out[k] = h.Get(k)
	}
	return out
}

// canonicalize folds keys written as map literals ("content-type") into their
// canonical form so Set below replaces them instead of adding a duplicate.
func canonicalize(h http.Header) {
	for k, vs := range h {
		if ck := http.CanonicalHeaderKey(k); ck != k {
			delete(h, k)
			h[ck] = append(h[ck], vs...)
		}
	}
}

// FetchWithAuth sends a request to url carrying the stored token.
//
// A nil opts or nil opts.Headers is replaced by an empty one. When a non-empty
// token is stored, Authorization is set to "Bearer <token>". Content-Type is
// always forced to application/json, overwriting any caller value. The response
// is returned as-is: status codes are not inspected and nothing is retried.
func (h *Helper) FetchWithAuth(ctx context.Context, url string, opts *RequestOptions) (*http.Response, error) {
	token, err := h.GetToken()
	if err != nil && !errors.Is(err, repo.ErrNoToken) {
		return nil, err
	}

	if opts == nil {
		opts = &RequestOptions{}
	}
	if opts.Headers == nil {
		opts.Headers = http.Header{}
	}
	canonicalize(opts.Headers)
	if token != "" {
		opts.Headers.Set("Authorization", "Bearer "+token)
	}
	opts.Headers.Set("Content-Type", "application/json")

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	req, err := http.NewRequestWithContext(ctx, method, url, opts.Body)
	if err != nil {
		return nil, err
	}
	for k, vs := range opts.Headers {
		req.Header[k] = append([]string(nil), vs...)
	}

	h.logger.Debugw("fetch", "method", method, "url", url, "headers", redactHeaders(req.Header))
	return h.client.Do(req)
}
