package service

import (
	"fmt"
	"strings"

	"github.com/devnest/cli/pkg/api"
	"github.com/devnest/cli/pkg/client"
	"github.com/devnest/cli/pkg/credentials"
	cerrors "github.com/devnest/cli/pkg/errors"
	"github.com/devnest/cli/pkg/feed"
	"github.com/devnest/cli/pkg/formatter"
	"github.com/devnest/cli/pkg/identity"
)

// requireSession loads the persisted session or fails with an auth_required
// error. It does not touch the network.
func requireSession() (*credentials.Credentials, error) {
	creds, err := credentials.Load()
	if err != nil {
		return nil, err
	}
	if creds == nil {
		formatter.PrintError("Not logged in. Please run 'devnest auth login'")
		return nil, cerrors.AuthRequiredError()
	}
	return creds, nil
}

// authenticate obtains a fresh id token and attaches it to the Directory
// Service client. Tokens are short-lived, so this runs immediately before
// each authenticated request.
func authenticate() (*credentials.Credentials, error) {
	creds, err := requireSession()
	if err != nil {
		return nil, err
	}

	token, err := identity.FreshToken()
	if err != nil {
		if cerrors.IsAuthRequired(err) {
			formatter.PrintError("Session expired. Please run 'devnest auth login'")
		}
		return nil, err
	}

	client.SetAuthToken(token)
	return creds, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func joinTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}

// projectRows renders projects as table rows, annotated with the viewer's
// like/save state when userID is non-empty.
func projectRows(projects []api.Project, userID string) [][]string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		marks := ""
		if userID != "" {
			if p.HasLike(userID) {
				marks += "♥"
			}
			if p.HasSave(userID) {
				marks += "■"
			}
		}
		rows = append(rows, []string{
			p.ID,
			truncate(p.Title, 40),
			p.UserName,
			joinTags(p.Tags),
			feed.AverageRating(p.Ratings),
			fmt.Sprintf("%d", len(p.Likes)),
			marks,
		})
	}
	return rows
}

var projectColumns = []string{"ID", "TITLE", "AUTHOR", "TAGS", "RATING", "LIKES", ""}

func printProjectList(title string, projects []api.Project, userID string) {
	if len(projects) == 0 {
		formatter.PrintInfo("No projects found")
		return
	}
	if title != "" {
		formatter.Bold.Println(title)
	}
	formatter.PrintTable(projectColumns, projectRows(projects, userID))
}
