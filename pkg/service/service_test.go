package service

import (
	"testing"

	"github.com/devnest/cli/pkg/api"
	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	testCases := []struct {
		input  string
		expect []string
		name   string
	}{
		{"React, MongoDB, Node", []string{"React", "MongoDB", "Node"}, "spaced list"},
		{"React,,MongoDB", []string{"React", "MongoDB"}, "empty element dropped"},
		{"  Go  ", []string{"Go"}, "whitespace trimmed"},
		{"", nil, "empty input"},
		{" , , ", nil, "only separators"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := splitTags(tc.input)
			if len(tc.expect) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 40))
	assert.Equal(t, "exactly-ten", truncate("exactly-ten", 11))

	long := truncate("a very long project title that keeps going", 10)
	assert.Len(t, long, 10)
	assert.Equal(t, "...", long[7:])
}

func TestJoinTags(t *testing.T) {
	assert.Equal(t, "-", joinTags(nil))
	assert.Equal(t, "React, Vue", joinTags([]string{"React", "Vue"}))
}

func TestProjectRowsMarksViewerState(t *testing.T) {
	projects := []api.Project{
		{ID: "p1", Title: "Tracker", UserName: "alice", Likes: []string{"me"}, Saves: []string{"me"}},
		{ID: "p2", Title: "Blog", UserName: "bob"},
	}

	rows := projectRows(projects, "me")
	assert.Len(t, rows, 2)
	assert.Equal(t, "♥■", rows[0][6])
	assert.Equal(t, "", rows[1][6])

	// Without a viewer no marks are added
	rows = projectRows(projects, "")
	assert.Equal(t, "", rows[0][6])
}

func TestProjectRowsRating(t *testing.T) {
	projects := []api.Project{
		{ID: "p1", Ratings: []api.Rating{{Stars: 4}, {Stars: 5}}},
		{ID: "p2"},
	}

	rows := projectRows(projects, "")
	assert.Equal(t, "4.5", rows[0][4])
	assert.Equal(t, "No ratings", rows[1][4])
}
