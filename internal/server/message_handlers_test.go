package server

import (
	"net/http"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastMessage(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.createUser(t, "admin@example.com", models.RoleAdmin)
	token := ts.tokenFor(t, admin)

	resp := ts.request(t, http.MethodPost, "/api/admin/messages", token,
		map[string]any{"content": "Planned downtime on Saturday"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)

	// The author is the verified caller, not anything from the payload.
	assert.Equal(t, admin.ID.String(), body["admin_id"])
	assert.Equal(t, "Planned downtime on Saturday", body["content"])
	assert.NotEmpty(t, body["id"])
}

func TestBroadcastMessage_IgnoresClientAuthor(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.createUser(t, "admin@example.com", models.RoleAdmin)
	token := ts.tokenFor(t, admin)

	resp := ts.request(t, http.MethodPost, "/api/admin/messages", token,
		map[string]any{"content": "hello", "admin_id": "5c9df997-25ed-4b81-bc93-bfe338724c6b"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, admin.ID.String(), body["admin_id"])
}

func TestBroadcastMessage_EmptyContent(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.createUser(t, "admin@example.com", models.RoleAdmin)
	token := ts.tokenFor(t, admin)

	for _, content := range []string{"", "   "} {
		resp := ts.request(t, http.MethodPost, "/api/admin/messages", token,
			map[string]any{"content": content})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		_ = resp.Body.Close()
	}
}

func TestBroadcastMessage_NonAdmin(t *testing.T) {
	ts := newTestServer(t)
	user := ts.createUser(t, "member@example.com", models.RoleUser)
	token := ts.tokenFor(t, user)

	resp := ts.request(t, http.MethodPost, "/api/admin/messages", token,
		map[string]any{"content": "I am not allowed"})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetMessages(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.createUser(t, "admin@example.com", models.RoleAdmin)
	token := ts.tokenFor(t, admin)

	for _, content := range []string{"first", "second"} {
		resp := ts.request(t, http.MethodPost, "/api/admin/messages", token,
			map[string]any{"content": content})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp := ts.request(t, http.MethodGet, "/api/admin/messages", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Len(t, body["messages"], 2)
}
