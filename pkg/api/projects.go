package api

import (
	"fmt"

	"github.com/devnest/cli/pkg/client"
	"github.com/devnest/cli/pkg/logger"
)

// ListProjects fetches the full public project snapshot. No auth required.
func ListProjects() ([]Project, error) {
	logger.Debug("Listing projects")

	var projects []Project

	resp, err := client.GetClient().
		R().
		SetResult(&projects).
		Get("/api/projects")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return projects, nil
}

// GetProject fetches one project record. No auth required.
func GetProject(projectID string) (*Project, error) {
	logger.Debug("Getting project", "project_id", projectID)

	var project Project

	resp, err := client.GetClient().
		R().
		SetResult(&project).
		Get(fmt.Sprintf("/api/projects/%s", projectID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &project, nil
}

// CreateProject posts a new project. Requires a bearer credential.
func CreateProject(req CreateProjectRequest) (*Project, error) {
	logger.Debug("Creating project", "title", req.Title)

	var project Project

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&project).
		Post("/api/projects")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &project, nil
}

// UpdateProject edits a project. The Directory Service enforces owner-only.
func UpdateProject(projectID string, req UpdateProjectRequest) error {
	logger.Debug("Updating project", "project_id", projectID)

	resp, err := client.GetClient().
		R().
		SetBody(req).
		Put(fmt.Sprintf("/api/projects/%s", projectID))

	return CheckResponse(resp, err)
}

// DeleteProject deletes a project. The Directory Service enforces owner-only.
func DeleteProject(projectID string) error {
	logger.Debug("Deleting project", "project_id", projectID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/projects/%s", projectID))

	return CheckResponse(resp, err)
}

// ListMine fetches the authenticated user's own projects
func ListMine() ([]Project, error) {
	logger.Debug("Listing my projects")

	var projects []Project

	resp, err := client.GetClient().
		R().
		SetResult(&projects).
		Get("/api/projects/mine")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return projects, nil
}

// ListLiked fetches projects the user currently likes
func ListLiked(userID string) ([]Project, error) {
	logger.Debug("Listing liked projects", "user_id", userID)
	return listByMembership("liked", userID)
}

// ListSaved fetches projects the user currently has saved
func ListSaved(userID string) ([]Project, error) {
	logger.Debug("Listing saved projects", "user_id", userID)
	return listByMembership("saved", userID)
}

// ListFavorites fetches projects the user has favorited
func ListFavorites(userID string) ([]Project, error) {
	logger.Debug("Listing favorite projects", "user_id", userID)
	return listByMembership("favorites", userID)
}

func listByMembership(kind, userID string) ([]Project, error) {
	var projects []Project

	resp, err := client.GetClient().
		R().
		SetQueryParam("userId", userID).
		SetResult(&projects).
		Get(fmt.Sprintf("/api/projects/%s", kind))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return projects, nil
}
