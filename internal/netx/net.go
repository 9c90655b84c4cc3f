// Package netx holds small HTTP helpers that sit outside the directory API
// client, such as checking whether a profile image can be loaded.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPDoer is the part of *http.Client used here.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ProbeImage fetches url once and reports whether it answered 200 with an
// image content type. There is no retry; any failure is returned as an error.
func ProbeImage(ctx context.Context, doer HTTPDoer, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image load failed: %s", resp.Status)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("image load failed: unexpected content type %q", ct)
	}
	return nil
}
