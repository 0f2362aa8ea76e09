package server

import (
	"net/http"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.request(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"password": "CorrectHorse1!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)

	assert.NotEmpty(t, body["token"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", user["email"])
	assert.Equal(t, "user", user["role"])
	_, leaked := user["password_hash"]
	assert.False(t, leaked)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "ada@example.com", models.RoleUser)

	resp := ts.request(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name":     "Ada Again",
		"email":    "ada@example.com",
		"password": "CorrectHorse1!",
	})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSignup_WeakPassword(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.request(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"password": "short",
	})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)
	user := ts.createUser(t, "ada@example.com", models.RoleUser)

	resp := ts.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    user.Email,
		"password": "CorrectHorse1!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := newTestServer(t)
	user := ts.createUser(t, "ada@example.com", models.RoleUser)

	resp := ts.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    user.Email,
		"password": "WrongHorse1!",
	})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "nobody@example.com",
		"password": "CorrectHorse1!",
	})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_BannedUser(t *testing.T) {
	ts := newTestServer(t)
	user := ts.createUser(t, "banned@example.com", models.RoleUser)
	require.NoError(t, ts.db.Model(user).Update("is_banned", true).Error)

	resp := ts.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    user.Email,
		"password": "CorrectHorse1!",
	})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRefresh(t *testing.T) {
	ts := newTestServer(t)
	user := ts.createUser(t, "ada@example.com", models.RoleUser)
	token := ts.tokenFor(t, user)

	resp := ts.request(t, http.MethodPost, "/api/auth/refresh", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	fresh, ok := body["token"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, fresh)

	// The fresh token works against a protected route.
	resp = ts.request(t, http.MethodGet, "/api/users/me", fresh, nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogout_RevokesToken(t *testing.T) {
	ts := newTestServer(t)
	user := ts.createUser(t, "ada@example.com", models.RoleUser)
	token := ts.tokenFor(t, user)

	resp := ts.request(t, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = ts.request(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	// The blacklisted token no longer authenticates.
	resp = ts.request(t, http.MethodGet, "/api/users/me", token, nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoute_RejectsGarbageToken(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.request(t, http.MethodGet, "/api/users/me", "not.a.jwt", nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
