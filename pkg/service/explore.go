package service

import (
	"fmt"

	"github.com/devnest/cli/pkg/api"
	"github.com/devnest/cli/pkg/config"
	"github.com/devnest/cli/pkg/feed"
	"github.com/devnest/cli/pkg/formatter"
	"github.com/devnest/cli/pkg/logger"
	"github.com/devnest/cli/pkg/overlay"
)

// ExploreService drives the public project feed: fetch the snapshot, run the
// filter pipeline, render one page of cards.
type ExploreService struct {
	shadow *overlay.Overlay
}

// NewExploreService creates a new explore service
func NewExploreService() *ExploreService {
	return &ExploreService{shadow: overlay.New()}
}

// Browse fetches the snapshot and renders the page selected by filters. The
// whole filtered set is recomputed from the snapshot on every call.
func (s *ExploreService) Browse(filters feed.FilterState) error {
	creds, err := requireSession()
	if err != nil {
		return err
	}

	projects, err := api.ListProjects()
	if err != nil {
		formatter.PrintError("Failed to fetch projects: %v", err)
		return err
	}

	s.shadow.Reconcile(projects, creds.UserID)

	pageSize := config.GetInt("feed.page_size")
	page := feed.SelectPageSize(projects, filters, pageSize)

	if page.FilteredCount == 0 {
		formatter.PrintInfo("No projects match the current filters")
		return nil
	}

	if len(page.Items) == 0 {
		formatter.PrintInfo("Page %d is empty (%d pages available)", filters.Page, page.TotalPages)
		return nil
	}

	printProjectList("", page.Items, creds.UserID)

	current := filters.Page
	if current < 1 {
		current = 1
	}
	fmt.Printf("\nPage %d of %d (%d projects)\n", current, page.TotalPages, page.FilteredCount)

	return nil
}

// Like toggles the caller's like on a project. The shadow flag flips only
// after the server confirms.
func (s *ExploreService) Like(projectID string) error {
	return s.toggle(projectID, overlay.KindLike, "Liked", "Like removed", api.ToggleLike)
}

// Save toggles the caller's save on a project
func (s *ExploreService) Save(projectID string) error {
	return s.toggle(projectID, overlay.KindSave, "Saved", "Save removed", api.ToggleSave)
}

// Favorite toggles the caller's favorite on a project
func (s *ExploreService) Favorite(projectID string) error {
	return s.toggle(projectID, overlay.KindFavorite, "Added to favorites", "Removed from favorites", api.ToggleFavorite)
}

func (s *ExploreService) toggle(projectID string, kind overlay.Kind, onMsg, offMsg string, call func(projectID, userID string) error) error {
	creds, err := authenticate()
	if err != nil {
		return err
	}

	if !s.shadow.Begin(projectID, kind) {
		logger.Debug("Toggle already in flight, dropping", "project_id", projectID, "kind", kind)
		return nil
	}
	defer s.shadow.End(projectID, kind)

	// Seed the shadow flag from the authoritative record so the flip below
	// reports the correct resulting state.
	project, err := api.GetProject(projectID)
	if err != nil {
		formatter.PrintError("Project not found: %v", err)
		return err
	}
	s.shadow.Reconcile([]api.Project{*project}, creds.UserID)

	if err := call(projectID, creds.UserID); err != nil {
		logger.Error("Toggle failed", "project_id", projectID, "kind", kind, "error", err)
		formatter.PrintError("Request failed: %v", err)
		return err
	}

	if s.shadow.Flip(projectID, kind) {
		formatter.PrintSuccess("✓ %s: %s", onMsg, project.Title)
	} else {
		formatter.PrintSuccess("✓ %s: %s", offMsg, project.Title)
	}
	return nil
}

// Rate submits a star rating for a project
func (s *ExploreService) Rate(projectID string, stars int) error {
	if stars < 1 || stars > 5 {
		formatter.PrintError("Rating must be between 1 and 5 stars")
		return fmt.Errorf("invalid rating: %d", stars)
	}

	creds, err := authenticate()
	if err != nil {
		return err
	}

	if !s.shadow.Begin(projectID, overlay.KindRate) {
		logger.Debug("Rating already in flight, dropping", "project_id", projectID)
		return nil
	}
	defer s.shadow.End(projectID, overlay.KindRate)

	if err := api.RateProject(projectID, creds.UserID, stars); err != nil {
		logger.Error("Rating failed", "project_id", projectID, "error", err)
		formatter.PrintError("Request failed: %v", err)
		return err
	}

	s.shadow.SetRating(projectID, stars)

	// Refetch so the displayed average reflects the server's record.
	project, err := api.GetProject(projectID)
	if err != nil {
		formatter.PrintSuccess("✓ Rated %d stars", stars)
		return nil
	}

	formatter.PrintSuccess("✓ Rated %s: %d stars (average now %s)",
		project.Title, stars, feed.AverageRating(project.Ratings))
	return nil
}
