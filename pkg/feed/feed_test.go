package feed

import (
	"fmt"
	"testing"

	"github.com/devnest/cli/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProjects(n int) []api.Project {
	projects := make([]api.Project, 0, n)
	for i := 0; i < n; i++ {
		projects = append(projects, api.Project{
			ID:          fmt.Sprintf("p%02d", i),
			Title:       fmt.Sprintf("Project %02d", i),
			Description: "a sample project",
			UserName:    "alice",
		})
	}
	return projects
}

func TestSelectPagePaginatesNinePerPage(t *testing.T) {
	projects := makeProjects(20)

	page := SelectPage(projects, FilterState{Page: 1})
	require.Len(t, page.Items, 9)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 20, page.FilteredCount)
	assert.Equal(t, "p00", page.Items[0].ID)

	page = SelectPage(projects, FilterState{Page: 3})
	require.Len(t, page.Items, 2)
	assert.Equal(t, "p18", page.Items[0].ID)
}

func TestSelectPageExactMultipleOfPageSize(t *testing.T) {
	page := SelectPage(makeProjects(18), FilterState{Page: 2})
	assert.Len(t, page.Items, 9)
	assert.Equal(t, 2, page.TotalPages)
}

func TestSelectPageOutOfRangeIsEmptyNotError(t *testing.T) {
	projects := makeProjects(5)

	page := SelectPage(projects, FilterState{Page: 99})
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 5, page.FilteredCount)
}

func TestSelectPageClampsPageBelowOne(t *testing.T) {
	projects := makeProjects(5)

	for _, p := range []int{0, -3} {
		page := SelectPage(projects, FilterState{Page: p})
		assert.Len(t, page.Items, 5, "page %d should behave like page 1", p)
	}
}

func TestSelectPageEmptySnapshot(t *testing.T) {
	page := SelectPage(nil, FilterState{Page: 1})
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 0, page.FilteredCount)
}

func TestKeywordFilterMatchesTitleOrDescription(t *testing.T) {
	projects := []api.Project{
		{ID: "a", Title: "Habit Tracker", Description: "daily habits"},
		{ID: "b", Title: "Chat App", Description: "an expense tracker in disguise"},
		{ID: "c", Title: "Portfolio", Description: "personal site"},
	}

	page := SelectPage(projects, FilterState{Keyword: "tracker", Page: 1})
	require.Len(t, page.Items, 2)
	assert.Equal(t, "a", page.Items[0].ID)
	assert.Equal(t, "b", page.Items[1].ID)

	// Case folds both ways
	page = SelectPage(projects, FilterState{Keyword: "TRACKER", Page: 1})
	assert.Len(t, page.Items, 2)
}

func TestTagFilterIsExactMatch(t *testing.T) {
	projects := []api.Project{
		{ID: "a", Tags: []string{"React", "MongoDB"}},
		{ID: "b", Tags: []string{"react"}},
		{ID: "c", Tags: []string{"React Native"}},
	}

	page := SelectPage(projects, FilterState{Tag: "React", Page: 1})
	require.Len(t, page.Items, 1)
	assert.Equal(t, "a", page.Items[0].ID)

	// No partial or case-folded tag matches
	page = SelectPage(projects, FilterState{Tag: "Reac", Page: 1})
	assert.Empty(t, page.Items)
}

func TestUserFilterIsCaseInsensitiveSubstring(t *testing.T) {
	projects := []api.Project{
		{ID: "a", UserName: "Alice Johnson"},
		{ID: "b", UserName: "Bob"},
	}

	page := SelectPage(projects, FilterState{User: "alice", Page: 1})
	require.Len(t, page.Items, 1)
	assert.Equal(t, "a", page.Items[0].ID)
}

func TestFiltersCombineWithAnd(t *testing.T) {
	projects := []api.Project{
		{ID: "a", Title: "Todo App", Tags: []string{"React"}, UserName: "alice"},
		{ID: "b", Title: "Todo App", Tags: []string{"Vue"}, UserName: "alice"},
		{ID: "c", Title: "Blog", Tags: []string{"React"}, UserName: "alice"},
	}

	page := SelectPage(projects, FilterState{Keyword: "todo", Tag: "React", User: "alice", Page: 1})
	require.Len(t, page.Items, 1)
	assert.Equal(t, "a", page.Items[0].ID)
}

func TestFilteringPreservesSnapshotOrder(t *testing.T) {
	projects := []api.Project{
		{ID: "z", Title: "app one"},
		{ID: "m", Title: "app two"},
		{ID: "a", Title: "app three"},
	}

	page := SelectPage(projects, FilterState{Keyword: "app", Page: 1})
	require.Len(t, page.Items, 3)
	assert.Equal(t, "z", page.Items[0].ID)
	assert.Equal(t, "m", page.Items[1].ID)
	assert.Equal(t, "a", page.Items[2].ID)
}

func TestTotalPagesTracksFilteredSet(t *testing.T) {
	projects := makeProjects(20)
	projects[0].Title = "Unique Snowflake"

	page := SelectPage(projects, FilterState{Keyword: "snowflake", Page: 1})
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.FilteredCount)
}

func TestAverageRating(t *testing.T) {
	testCases := []struct {
		name    string
		ratings []api.Rating
		expect  string
	}{
		{"no ratings sentinel", nil, NoRatings},
		{"two ratings", []api.Rating{{UserID: "u1", Stars: 4}, {UserID: "u2", Stars: 5}}, "4.5"},
		{"single rating", []api.Rating{{UserID: "u1", Stars: 3}}, "3.0"},
		{"all ones", []api.Rating{{Stars: 1}, {Stars: 1}, {Stars: 1}}, "1.0"},
		{"rounding", []api.Rating{{Stars: 2}, {Stars: 3}}, "2.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, AverageRating(tc.ratings))
		})
	}
}

func TestPrevNextPageClamp(t *testing.T) {
	assert.Equal(t, 1, PrevPage(1))
	assert.Equal(t, 1, PrevPage(2))
	assert.Equal(t, 4, PrevPage(5))

	assert.Equal(t, 3, NextPage(2, 3))
	assert.Equal(t, 3, NextPage(3, 3))
	assert.Equal(t, 3, NextPage(7, 3))
}
