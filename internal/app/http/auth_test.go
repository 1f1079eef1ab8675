package routes_test

import (
	"net/http"
	"testing"

	"portfolio-admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ts := testutil.NewServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestAdmin_RequiresAPIKey(t *testing.T) {
	ts := testutil.NewServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/admin/skills", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+ts.Token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdmin_RequiresToken(t *testing.T) {
	ts := testutil.NewServer(t)

	resp := request(t, ts, http.MethodGet, "/api/admin/skills", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = request(t, ts, http.MethodGet, "/api/admin/skills", "not-a-token", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	ts := testutil.NewServer(t)

	resp := request(t, ts, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": testutil.AdminUsername,
		"password": testutil.AdminPassword,
	})
	expectStatus(t, resp, http.StatusOK)
	body := decode[map[string]any](t, resp)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, testutil.AdminUsername, body["username"])
	assert.NotEmpty(t, body["expires_at"])

	resp = request(t, ts, http.MethodGet, "/api/admin/session", token, nil)
	expectStatus(t, resp, http.StatusOK)
	session := decode[map[string]any](t, resp)
	assert.Equal(t, "admin", session["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := testutil.NewServer(t)

	for _, creds := range []map[string]string{
		{"username": testutil.AdminUsername, "password": "wrong"},
		{"username": "nobody", "password": testutil.AdminPassword},
	} {
		resp := request(t, ts, http.MethodPost, "/api/admin/login", "", creds)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	ts := testutil.NewServer(t)

	resp := request(t, ts, http.MethodPost, "/api/admin/logout", ts.Token, nil)
	expectStatus(t, resp, http.StatusOK)
	resp.Body.Close()

	resp = request(t, ts, http.MethodGet, "/api/admin/skills", ts.Token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChangePassword(t *testing.T) {
	ts := testutil.NewServer(t)

	resp := request(t, ts, http.MethodPost, "/api/admin/change-password", ts.Token, map[string]string{
		"old_password": testutil.AdminPassword,
		"new_password": "short",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = request(t, ts, http.MethodPost, "/api/admin/change-password", ts.Token, map[string]string{
		"old_password": testutil.AdminPassword,
		"new_password": "better-pass-42",
	})
	expectStatus(t, resp, http.StatusOK)
	resp.Body.Close()

	resp = request(t, ts, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": testutil.AdminUsername,
		"password": "better-pass-42",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
