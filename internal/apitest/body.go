package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// readAll drains r.Body and replaces it so handlers can read it again.
func readAll(r *http.Request) ([]byte, error) {
	b, err := io.ReadAll(r.Body)
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(b))
	return b, err
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
