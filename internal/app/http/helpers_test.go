package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"portfolio-admin/internal/testutil"

	"github.com/stretchr/testify/require"
)

// request sends a JSON request with the client key and, when token is set,
// a bearer session token.
func request(t *testing.T, ts *testutil.Server, method, path, token string, body any) *http.Response {
	t.Helper()

	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Api-Key", testutil.APIKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.Failf(t, "unexpected status", "want %d, got %d: %s", want, resp.StatusCode, body)
	}
}
