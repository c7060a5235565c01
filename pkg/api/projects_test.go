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

func TestListProjects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/projects", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"_id": "abc123", "title": "Habit Tracker", "userName": "alice",
			 "tags": ["React"], "likes": ["u1", "u2"],
			 "ratings": [{"userId": "u1", "stars": 4}]},
			{"_id": "def456", "title": "Chat App", "userName": "bob"}
		]`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	projects, err := ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 2)

	assert.Equal(t, "abc123", projects[0].ID)
	assert.Equal(t, "Habit Tracker", projects[0].Title)
	assert.Equal(t, []string{"u1", "u2"}, projects[0].Likes)
	assert.Equal(t, 4, projects[0].Ratings[0].Stars)
	assert.True(t, projects[0].HasLike("u1"))
	assert.False(t, projects[1].HasLike("u1"))
}

func TestGetProject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects/abc123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id": "abc123", "title": "Habit Tracker",
			"comments": [{"userId": "u1", "text": "nice work"}]}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	project, err := GetProject("abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", project.ID)
	require.Len(t, project.Comments, 1)
	assert.Equal(t, "nice work", project.Comments[0].Text)
}

func TestGetProjectNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Project not found"}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	_, err := GetProject("missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCreateProject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/projects", r.URL.Path)
		assert.Equal(t, "Bearer fresh-token", r.Header.Get("Authorization"))

		var req CreateProjectRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Habit Tracker", req.Title)
		assert.Equal(t, []string{"React", "MongoDB"}, req.Tags)
		assert.Equal(t, "alice", req.UserName)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id": "new123", "title": "Habit Tracker"}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)
	client.SetAuthToken("fresh-token")
	defer client.ClearAuthToken()

	project, err := CreateProject(CreateProjectRequest{
		Title:       "Habit Tracker",
		Description: "track habits",
		Tags:        []string{"React", "MongoDB"},
		GithubLink:  "https://github.com/alice/habits",
		UserName:    "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "new123", project.ID)
}

func TestUpdateAndDeleteProject(t *testing.T) {
	var gotMethods []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethods = append(gotMethods, r.Method)
		assert.Equal(t, "/api/projects/abc123", r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	require.NoError(t, UpdateProject("abc123", UpdateProjectRequest{Title: "Renamed"}))
	require.NoError(t, DeleteProject("abc123"))
	assert.Equal(t, []string{http.MethodPut, http.MethodDelete}, gotMethods)
}

func TestMembershipListsPassUserID(t *testing.T) {
	var gotPaths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("userId"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	for _, call := range []func(string) ([]Project, error){ListLiked, ListSaved, ListFavorites} {
		projects, err := call("u1")
		require.NoError(t, err)
		assert.Empty(t, projects)
	}

	assert.Equal(t, []string{
		"/api/projects/liked",
		"/api/projects/saved",
		"/api/projects/favorites",
	}, gotPaths)
}
