// Package feed implements the client-side query pipeline that turns the
// fetched project snapshot into the page to display: three independent text
// filters, stable ordering, and fixed-size pagination. Everything here is
// pure; it is re-run on every render rather than memoized.
package feed

import (
	"fmt"
	"strings"

	"github.com/devnest/cli/pkg/api"
)

// DefaultPageSize matches the explore grid: nine cards per page.
const DefaultPageSize = 9

// NoRatings is the sentinel shown when a project has no ratings yet.
// AverageRating never returns "0.0" or NaN for an empty list.
const NoRatings = "No ratings"

// FilterState holds the ephemeral filter and pagination inputs for one view
// instance. Changing a filter does not reset Page; an out-of-range page
// renders empty rather than erroring.
type FilterState struct {
	Keyword string
	Tag     string
	User    string
	Page    int
}

// Page is the result of running the pipeline: the slice to display and the
// pagination facts derived from the filtered set.
type Page struct {
	Items         []api.Project
	TotalPages    int
	FilteredCount int
}

// SelectPage filters records by keyword, tag and user, then slices out the
// requested page. Filtering is a logical AND of the three predicates and
// preserves input order. The returned slice aliases records; callers treat
// it as read-only.
func SelectPage(records []api.Project, filters FilterState) Page {
	return SelectPageSize(records, filters, DefaultPageSize)
}

// SelectPageSize is SelectPage with an explicit page size.
func SelectPageSize(records []api.Project, filters FilterState, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := make([]api.Project, 0, len(records))
	for _, p := range records {
		if Matches(&p, filters) {
			filtered = append(filtered, p)
		}
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize

	page := filters.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return Page{Items: []api.Project{}, TotalPages: totalPages, FilteredCount: len(filtered)}
	}

	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page{Items: filtered[start:end], TotalPages: totalPages, FilteredCount: len(filtered)}
}

// Matches reports whether one record passes all three filters.
func Matches(p *api.Project, filters FilterState) bool {
	return matchKeyword(p, filters.Keyword) &&
		matchTag(p, filters.Tag) &&
		matchUser(p, filters.User)
}

// matchKeyword passes on an empty filter, or a case-insensitive substring
// match against title OR description.
func matchKeyword(p *api.Project, keyword string) bool {
	if keyword == "" {
		return true
	}
	k := strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(p.Title), k) ||
		strings.Contains(strings.ToLower(p.Description), k)
}

// matchTag passes on an empty filter or an exact tag element match. Exact
// (case-sensitive) matching is deliberate, even though keyword and user
// filters fold case.
func matchTag(p *api.Project, tag string) bool {
	if tag == "" {
		return true
	}
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// matchUser passes on an empty filter, or a case-insensitive substring match
// against the captured author name.
func matchUser(p *api.Project, user string) bool {
	if user == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.UserName), strings.ToLower(user))
}

// AverageRating returns the arithmetic mean of the stars to one decimal, or
// the NoRatings sentinel for an empty list. It is recomputed from the record
// on every refresh and never cached.
func AverageRating(ratings []api.Rating) string {
	if len(ratings) == 0 {
		return NoRatings
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Stars
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(ratings)))
}

// PrevPage steps back one page, never below 1.
func PrevPage(page int) int {
	if page <= 1 {
		return 1
	}
	return page - 1
}

// NextPage steps forward one page, never beyond totalPages.
func NextPage(page, totalPages int) int {
	if page >= totalPages {
		return totalPages
	}
	return page + 1
}
