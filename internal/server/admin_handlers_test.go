package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutes_RequireAuth(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.request(t, http.MethodGet, "/api/admin/users", "", nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutes_NonAdminForbidden(t *testing.T) {
	ts := newTestServer(t)
	user := ts.createUser(t, "regular@example.com", models.RoleUser)
	token := ts.tokenFor(t, user)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/users"},
		{http.MethodPut, "/api/admin/users/" + uuid.NewString() + "/ban"},
		{http.MethodGet, "/api/admin/stats/swaps"},
	}

	for _, p := range paths {
		resp := ts.request(t, p.method, p.path, token, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, "%s %s", p.method, p.path)
		_ = resp.Body.Close()
	}
}

func TestAdminRequired_WithoutAuthContext(t *testing.T) {
	ts := newTestServer(t)

	// Mounted without AuthRequired there is no caller identity; the
	// gate must reject with 401 rather than panic.
	app := fiber.New()
	app.Get("/locked", ts.server.AdminRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/locked", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetAllUsers_Pagination(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.createUser(t, "admin@example.com", models.RoleAdmin)
	for i := 0; i < 4; i++ {
		ts.createUser(t, fmt.Sprintf("member%d@example.com", i), models.RoleUser)
	}
	token := ts.tokenFor(t, admin)

	resp := ts.request(t, http.MethodGet, "/api/admin/users?skip=0&limit=3", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeListBody(t, resp), 3)

	resp = ts.request(t, http.MethodGet, "/api/admin/users?skip=3&limit=3", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	// 5 users total including the admin.
	assert.Len(t, decodeListBody(t, resp), 2)
}

func TestGetAllUsers_ZeroLimit(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.createUser(t, "admin@example.com", models.RoleAdmin)
	ts.createUser(t, "member@example.com", models.RoleUser)
	token := ts.tokenFor(t, admin)

	// An explicit limit=0 is honored, not replaced with the default.
	resp := ts.request(t, http.MethodGet, "/api/admin/users?skip=0&limit=0", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeListBody(t, resp))
}

func TestGetAllUsers_OmitsPasswordHash(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.createUser(t, "admin@example.com", models.RoleAdmin)
	token := ts.tokenFor(t, admin)

	resp := ts.request(t, http.MethodGet, "/api/admin/users", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	users := decodeListBody(t, resp)
	require.NotEmpty(t, users)
	first, ok := users[0].(map[string]any)
	require.True(t, ok)
	_, leaked := first["password_hash"]
	assert.False(t, leaked)
}

func TestBanAndUnbanUser(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.createUser(t, "admin@example.com", models.RoleAdmin)
	target := ts.createUser(t, "target@example.com", models.RoleUser)
	token := ts.tokenFor(t, admin)

	resp := ts.request(t, http.MethodPut, "/api/admin/users/"+target.ID.String()+"/ban", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["is_banned"])

	// Ban is idempotent.
	resp = ts.request(t, http.MethodPut, "/api/admin/users/"+target.ID.String()+"/ban", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = ts.request(t, http.MethodPut, "/api/admin/users/"+target.ID.String()+"/unban", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, false, body["is_banned"])
}

func TestBanUser_UnknownID(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.createUser(t, "admin@example.com", models.RoleAdmin)
	token := ts.tokenFor(t, admin)

	resp := ts.request(t, http.MethodPut, "/api/admin/users/"+uuid.NewString()+"/ban", token, nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBanUser_InvalidID(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.createUser(t, "admin@example.com", models.RoleAdmin)
	token := ts.tokenFor(t, admin)

	resp := ts.request(t, http.MethodPut, "/api/admin/users/not-a-uuid/ban", token, nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFlagSkill(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.createUser(t, "admin@example.com", models.RoleAdmin)
	token := ts.tokenFor(t, admin)

	skill := &models.Skill{Name: "Graffiti"}
	require.NoError(t, ts.db.Create(skill).Error)

	resp := ts.request(t, http.MethodPut, fmt.Sprintf("/api/admin/skills/%d/flag", skill.ID), token,
		map[string]any{"flagged": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["is_inappropriate"])

	// Flagged skills disappear from the public directory.
	resp = ts.request(t, http.MethodGet, "/api/skills", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	listBody := decodeBody(t, resp)
	assert.Empty(t, listBody["skills"])
}

func TestGetFeatureFlags(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.createUser(t, "admin@example.com", models.RoleAdmin)
	token := ts.tokenFor(t, admin)

	resp := ts.request(t, http.MethodGet, "/api/admin/feature-flags", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	flags, ok := body["flags"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "on", flags["ratings"])
}
