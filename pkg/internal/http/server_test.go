package http

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/solarvale/agora/pkg/internal/models"
	"github.com/solarvale/agora/pkg/internal/testbed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, server *App, path, token, body string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if len(token) > 0 {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := server.app.Test(req, -1)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, payload
}

func getJSON(t *testing.T, server *App, path, token string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if len(token) > 0 {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := server.app.Test(req, -1)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, payload
}

func TestVotingFlow(t *testing.T) {
	testbed.UseTestDatabase(t)
	server := NewServer()

	status, _ := postJSON(t, server, "/api/auth/signup", "",
		`{"username":"bob","email":"bob@example.com","password":"pw1234"}`)
	require.Equal(t, fiber.StatusOK, status)

	status, payload := postJSON(t, server, "/api/auth/signin", "",
		`{"identifier":"bob@example.com","password":"pw1234"}`)
	require.Equal(t, fiber.StatusOK, status)

	var signin struct {
		Token string `json:"token"`
	}
	require.NoError(t, jsoniter.Unmarshal(payload, &signin))
	require.NotEmpty(t, signin.Token)

	status, payload = postJSON(t, server, "/api/polls", signin.Token,
		`{"title":"Color?","options":["Red","Blue"]}`)
	require.Equal(t, fiber.StatusOK, status)

	var poll models.Poll
	require.NoError(t, jsoniter.Unmarshal(payload, &poll))
	require.Len(t, poll.Options, 2)

	votesPath := fmt.Sprintf("/api/polls/%d/votes", poll.ID)
	voteBody := fmt.Sprintf(`{"option_id":%d}`, poll.Options[0].ID)

	// Voting needs authentication.
	status, _ = postJSON(t, server, votesPath, "", voteBody)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = postJSON(t, server, votesPath, signin.Token, voteBody)
	require.Equal(t, fiber.StatusOK, status)

	// A second vote on the same poll is rejected, whatever the option.
	status, _ = postJSON(t, server, votesPath, signin.Token,
		fmt.Sprintf(`{"option_id":%d}`, poll.Options[1].ID))
	assert.Equal(t, fiber.StatusConflict, status)

	status, payload = getJSON(t, server, fmt.Sprintf("/api/polls/%d/metric", poll.ID), "")
	require.Equal(t, fiber.StatusOK, status)

	var metric models.PollMetric
	require.NoError(t, jsoniter.Unmarshal(payload, &metric))
	assert.EqualValues(t, 1, metric.TotalVote)
	assert.EqualValues(t, 1, metric.ByOptions["Red"])
}

func TestSignoutTerminatesSession(t *testing.T) {
	testbed.UseTestDatabase(t)
	server := NewServer()

	status, _ := postJSON(t, server, "/api/auth/signup", "",
		`{"username":"carol","email":"carol@example.com","password":"pw1234"}`)
	require.Equal(t, fiber.StatusOK, status)

	status, payload := postJSON(t, server, "/api/auth/signin", "",
		`{"identifier":"carol","password":"pw1234"}`)
	require.Equal(t, fiber.StatusOK, status)

	var signin struct {
		Token string `json:"token"`
	}
	require.NoError(t, jsoniter.Unmarshal(payload, &signin))

	status, _ = getJSON(t, server, "/api/users/me", signin.Token)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = postJSON(t, server, "/api/auth/signout", signin.Token, `{}`)
	require.Equal(t, fiber.StatusNoContent, status)

	status, _ = getJSON(t, server, "/api/users/me", signin.Token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAdminRequiresStaff(t *testing.T) {
	testbed.UseTestDatabase(t)
	server := NewServer()

	status, _ := postJSON(t, server, "/api/auth/signup", "",
		`{"username":"mallory","email":"mallory@example.com","password":"pw1234"}`)
	require.Equal(t, fiber.StatusOK, status)

	status, payload := postJSON(t, server, "/api/auth/signin", "",
		`{"identifier":"mallory","password":"pw1234"}`)
	require.Equal(t, fiber.StatusOK, status)

	var signin struct {
		Token string `json:"token"`
	}
	require.NoError(t, jsoniter.Unmarshal(payload, &signin))

	status, _ = postJSON(t, server, "/admin/categories", signin.Token,
		`{"alias":"colors","name":"Colors"}`)
	assert.Equal(t, fiber.StatusForbidden, status)
}
