package service

import (
	"fmt"
	"strings"

	"github.com/devnest/cli/pkg/api"
	cerrors "github.com/devnest/cli/pkg/errors"
	"github.com/devnest/cli/pkg/feed"
	"github.com/devnest/cli/pkg/formatter"
	"github.com/devnest/cli/pkg/logger"
	"github.com/devnest/cli/pkg/prompter"
)

type ProjectService struct{}

// NewProjectService creates a new project service
func NewProjectService() *ProjectService {
	return &ProjectService{}
}

// Create prompts for project details and submits the new record. Title,
// description and GitHub link are required; validation blocks the request.
func (s *ProjectService) Create() error {
	creds, err := authenticate()
	if err != nil {
		return err
	}

	title, err := prompter.PromptString("Title: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" {
		formatter.PrintError("Title is required")
		return cerrors.ValidationError("title", "cannot be empty")
	}

	description, err := prompter.PromptMultilineString("Description")
	if err != nil {
		return err
	}
	if strings.TrimSpace(description) == "" {
		formatter.PrintError("Description is required")
		return cerrors.ValidationError("description", "cannot be empty")
	}

	githubLink, err := prompter.PromptString("GitHub link: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(githubLink) == "" {
		formatter.PrintError("GitHub link is required")
		return cerrors.ValidationError("githubLink", "cannot be empty")
	}

	liveDemo, err := prompter.PromptString("Live demo URL (optional): ")
	if err != nil {
		return err
	}

	tagsInput, err := prompter.PromptString("Tags (comma-separated): ")
	if err != nil {
		return err
	}

	project, err := api.CreateProject(api.CreateProjectRequest{
		Title:       title,
		Description: description,
		Tags:        splitTags(tagsInput),
		GithubLink:  githubLink,
		LiveDemo:    liveDemo,
		UserName:    creds.Label(),
	})
	if err != nil {
		formatter.PrintError("Failed to create project: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Project created!")
	formatter.PrintInfo("ID: %s", project.ID)
	return nil
}

// Mine lists the authenticated user's own projects
func (s *ProjectService) Mine() error {
	creds, err := authenticate()
	if err != nil {
		return err
	}

	projects, err := api.ListMine()
	if err != nil {
		formatter.PrintError("Failed to fetch your projects: %v", err)
		return err
	}

	printProjectList("My projects", projects, creds.UserID)
	return nil
}

// View shows one project record in full, comments included
func (s *ProjectService) View(projectID string) error {
	project, err := api.GetProject(projectID)
	if err != nil {
		formatter.PrintError("Project not found: %v", err)
		return err
	}

	s.printProject(project)
	return nil
}

// Edit fetches the current record and prompts for replacement fields; an
// empty answer keeps the current value.
func (s *ProjectService) Edit(projectID string) error {
	if _, err := authenticate(); err != nil {
		return err
	}

	project, err := api.GetProject(projectID)
	if err != nil {
		formatter.PrintError("Project not found: %v", err)
		return err
	}

	formatter.PrintInfo("Editing %s (empty answer keeps the current value)", formatter.Bold.Sprint(project.Title))

	title, err := prompter.PromptString(fmt.Sprintf("Title [%s]: ", project.Title))
	if err != nil {
		return err
	}
	if title == "" {
		title = project.Title
	}

	description, err := prompter.PromptMultilineString("Description")
	if err != nil {
		return err
	}
	if description == "" {
		description = project.Description
	}

	githubLink, err := prompter.PromptString(fmt.Sprintf("GitHub link [%s]: ", project.GithubLink))
	if err != nil {
		return err
	}
	if githubLink == "" {
		githubLink = project.GithubLink
	}

	liveDemo, err := prompter.PromptString(fmt.Sprintf("Live demo URL [%s]: ", project.LiveDemo))
	if err != nil {
		return err
	}
	if liveDemo == "" {
		liveDemo = project.LiveDemo
	}

	tagsInput, err := prompter.PromptString(fmt.Sprintf("Tags [%s]: ", joinTags(project.Tags)))
	if err != nil {
		return err
	}
	tags := project.Tags
	if tagsInput != "" {
		tags = splitTags(tagsInput)
	}

	if err := api.UpdateProject(projectID, api.UpdateProjectRequest{
		Title:       title,
		Description: description,
		Tags:        tags,
		GithubLink:  githubLink,
		LiveDemo:    liveDemo,
	}); err != nil {
		formatter.PrintError("Failed to update project: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Project updated")
	return nil
}

// Delete removes a project after confirmation
func (s *ProjectService) Delete(projectID string) error {
	if _, err := authenticate(); err != nil {
		return err
	}

	project, err := api.GetProject(projectID)
	if err != nil {
		formatter.PrintError("Project not found: %v", err)
		return err
	}

	confirm, err := prompter.PromptConfirm(fmt.Sprintf("Delete '%s'? This cannot be undone.", project.Title))
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := api.DeleteProject(projectID); err != nil {
		formatter.PrintError("Failed to delete project: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Project deleted")
	return nil
}

// Comment prompts for comment text and submits it. Whitespace-only text is
// rejected before any request is sent. The comment list shown afterwards is
// refetched from the server, never appended locally.
func (s *ProjectService) Comment(projectID string) error {
	creds, err := authenticate()
	if err != nil {
		return err
	}

	text, err := prompter.PromptMultilineString("Comment")
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		formatter.PrintError("Comment cannot be empty")
		return cerrors.ValidationError("comment", "cannot be empty")
	}

	if err := api.SubmitComment(projectID, creds.UserID, text); err != nil {
		logger.Error("Comment failed", "project_id", projectID, "error", err)
		formatter.PrintError("Failed to post comment: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Comment posted")

	project, err := api.GetProject(projectID)
	if err != nil {
		return nil
	}
	s.printComments(project)
	return nil
}

func (s *ProjectService) printProject(project *api.Project) {
	fmt.Println()
	formatter.Bold.Println(project.Title)
	fmt.Printf("by %s\n\n", project.UserName)
	fmt.Println(project.Description)
	fmt.Println()

	keyValues := map[string]interface{}{
		"ID":        project.ID,
		"Tags":      joinTags(project.Tags),
		"GitHub":    project.GithubLink,
		"Live Demo": project.LiveDemo,
		"Rating":    feed.AverageRating(project.Ratings),
		"Likes":     len(project.Likes),
		"Saves":     len(project.Saves),
		"Favorites": len(project.FavoritedBy),
	}
	formatter.PrintKeyValue(keyValues)

	s.printComments(project)
}

func (s *ProjectService) printComments(project *api.Project) {
	fmt.Println()
	if len(project.Comments) == 0 {
		formatter.PrintInfo("No comments yet")
		return
	}

	formatter.Bold.Printf("Comments (%d)\n", len(project.Comments))
	for _, c := range project.Comments {
		fmt.Printf("  %s: %s\n", c.UserID, c.Text)
	}
}

func splitTags(input string) []string {
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
