package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kawe_webmanager/model"
)

func testClientFor(srv *httptest.Server, token string, timeout time.Duration) *PluginClient {
	return &PluginClient{
		BaseURL: srv.URL,
		Token:   token,
		Client:  &http.Client{Timeout: timeout},
	}
}

func TestPluginClientSetRole(t *testing.T) {
	var gotPath, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Auth-Token")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"Role updated in-game"}`))
	}))
	defer srv.Close()

	client := testClientFor(srv, "secret-token", 2*time.Second)
	res := client.SetRole("76561198000000001", "76561198000000002", 1)

	assert.True(t, res.Reachable)
	assert.True(t, res.Success)
	assert.Equal(t, "Role updated in-game", res.Message)
	assert.Equal(t, "/faction/set-role", gotPath)
	assert.Equal(t, "secret-token", gotToken)
}

func TestPluginClientPluginError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"target_not_in_faction"}`))
	}))
	defer srv.Close()

	client := testClientFor(srv, "", 2*time.Second)
	res := client.Invite("76561198000000001", "76561198000000002")

	// The plugin answered, so the caller must NOT fall back to the database.
	assert.True(t, res.Reachable)
	assert.False(t, res.Success)
	assert.Equal(t, model.ErrTargetNotInFaction, res.Error)
}

func TestPluginClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	client := testClientFor(srv, "", 50*time.Millisecond)
	res := client.AcceptRequest("76561198000000001", "76561198000000002")

	assert.False(t, res.Reachable)
	assert.Equal(t, model.ErrPluginTimeout, res.Error)
}

func TestPluginClientConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before the call so the port refuses connections

	client := testClientFor(srv, "", 1*time.Second)
	res := client.SetAlias("76561198000000001", 2, "Quartermaster")

	assert.False(t, res.Reachable)
	assert.Equal(t, model.ErrPluginUnavailable, res.Error)
}

func TestPluginClientGarbageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := testClientFor(srv, "", 2*time.Second)
	res := client.RejectRequest("76561198000000001", "76561198000000002")

	assert.False(t, res.Reachable)
	assert.Equal(t, model.ErrPluginUnavailable, res.Error)
}
