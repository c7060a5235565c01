package api

import (
	"fmt"

	"github.com/devnest/cli/pkg/client"
	"github.com/devnest/cli/pkg/logger"
)

// ToggleLike flips the caller's membership in a project's like set. The
// Directory Service is the authority on the resulting state; the response
// carries no body the client depends on.
func ToggleLike(projectID, userID string) error {
	logger.Debug("Toggling like", "project_id", projectID, "user_id", userID)
	return toggleMembership(projectID, userID, "like")
}

// ToggleSave flips the caller's membership in a project's save set
func ToggleSave(projectID, userID string) error {
	logger.Debug("Toggling save", "project_id", projectID, "user_id", userID)
	return toggleMembership(projectID, userID, "save")
}

// ToggleFavorite flips the caller's membership in a project's favorite set
func ToggleFavorite(projectID, userID string) error {
	logger.Debug("Toggling favorite", "project_id", projectID, "user_id", userID)
	return toggleMembership(projectID, userID, "favorites")
}

func toggleMembership(projectID, userID, kind string) error {
	resp, err := client.GetClient().
		R().
		SetBody(ToggleRequest{UserID: userID}).
		Put(fmt.Sprintf("/api/projects/%s/%s", projectID, kind))

	return CheckResponse(resp, err)
}

// RateProject submits a star rating. Replace-vs-append semantics belong to
// the server; the client only validates the range.
func RateProject(projectID, userID string, stars int) error {
	logger.Debug("Rating project", "project_id", projectID, "stars", stars)

	if stars < 1 || stars > 5 {
		return fmt.Errorf("stars must be between 1 and 5, got %d", stars)
	}

	resp, err := client.GetClient().
		R().
		SetBody(RateRequest{UserID: userID, Stars: stars}).
		Put(fmt.Sprintf("/api/projects/%s/rate", projectID))

	return CheckResponse(resp, err)
}

// SubmitComment appends a comment to a project. Callers are expected to
// refetch the record afterwards; the comment list displayed always comes
// from the server, never from a local append.
func SubmitComment(projectID, userID, text string) error {
	logger.Debug("Submitting comment", "project_id", projectID)

	resp, err := client.GetClient().
		R().
		SetBody(CommentRequest{UserID: userID, Text: text}).
		Post(fmt.Sprintf("/api/projects/%s/comment", projectID))

	return CheckResponse(resp, err)
}
