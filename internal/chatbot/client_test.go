package chatbot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBaseURL(t *testing.T) {
	t.Setenv("READLE_API_BASE_URL", "")
	t.Setenv("READLE_CHAT_API_URL", "")
	assert.Equal(t, "http://localhost:8000", ResolveBaseURL())

	t.Setenv("READLE_CHAT_API_URL", "https://fallback.example.com/")
	assert.Equal(t, "https://fallback.example.com", ResolveBaseURL())

	// The primary variable wins over the fallback.
	t.Setenv("READLE_API_BASE_URL", "https://primary.example.com/")
	assert.Equal(t, "https://primary.example.com", ResolveBaseURL())
}

func TestClientSend(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(ChatResponse{Response: "hi there", SessionID: "s1"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", nil)
	res, err := c.Send(context.Background(), "hello", "")
	require.NoError(t, err)
	assert.Equal(t, "hi there", res.Response)
	assert.Equal(t, "s1", res.SessionID)
	// An empty session id is omitted so the API opens a new session.
	assert.NotContains(t, gotBody, "session_id")

	_, err = c.Send(context.Background(), "hello again", "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", gotBody["session_id"])
}

func TestClientNewSessionAndClear(t *testing.T) {
	var clearedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/chat/session/new":
			_ = json.NewEncoder(w).Encode(CreateSessionResponse{SessionID: "s2", Message: "welcome"})
		case r.Method == http.MethodDelete:
			clearedPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	res, err := c.NewSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s2", res.SessionID)

	require.NoError(t, c.ClearSession(context.Background(), "s2"))
	assert.Equal(t, "/chat/session/s2", clearedPath)
}

func TestClientNonOKBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such session", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Health(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "chatbot request failed")
}

func TestClientUnreachableHost(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", nil)
	_, err := c.Health(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not API errors")
}
