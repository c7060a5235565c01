package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devnest/cli/pkg/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleEndpoints(t *testing.T) {
	var gotPaths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		assert.Equal(t, http.MethodPut, r.Method)

		var req ToggleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "u1", req.UserID)

		w.Write([]byte(`{}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	require.NoError(t, ToggleLike("p1", "u1"))
	require.NoError(t, ToggleSave("p1", "u1"))
	require.NoError(t, ToggleFavorite("p1", "u1"))

	assert.Equal(t, []string{
		"/api/projects/p1/like",
		"/api/projects/p1/save",
		"/api/projects/p1/favorites",
	}, gotPaths)
}

func TestToggleFailureReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "boom"}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	err := ToggleLike("p1", "u1")
	require.Error(t, err)
	assert.True(t, IsServerError(err))
}

func TestRateProject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/projects/p1/rate", r.URL.Path)

		var req RateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "u1", req.UserID)
		assert.Equal(t, 5, req.Stars)

		w.Write([]byte(`{}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	require.NoError(t, RateProject("p1", "u1", 5))
}

func TestRateProjectRejectsOutOfRangeStars(t *testing.T) {
	// No server: out-of-range stars must fail before any request.
	for _, stars := range []int{0, 6, -1} {
		err := RateProject("p1", "u1", stars)
		assert.Error(t, err, "stars=%d", stars)
	}
}

func TestSubmitComment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/projects/p1/comment", r.URL.Path)

		var req CommentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "great project", req.Text)

		w.Write([]byte(`{}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	require.NoError(t, SubmitComment("p1", "u1", "great project"))
}
