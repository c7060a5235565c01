package service

import (
	"fmt"
	"strings"

	"github.com/devnest/cli/pkg/api"
	"github.com/devnest/cli/pkg/credentials"
	cerrors "github.com/devnest/cli/pkg/errors"
	"github.com/devnest/cli/pkg/formatter"
	"github.com/devnest/cli/pkg/identity"
	"github.com/devnest/cli/pkg/logger"
)

type ProfileService struct{}

// NewProfileService creates a new profile service
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// Show displays the profile with project and interaction counts
func (s *ProfileService) Show() error {
	creds, err := authenticate()
	if err != nil {
		return err
	}

	mine, err := api.ListMine()
	if err != nil {
		formatter.PrintError("Failed to fetch your projects: %v", err)
		return err
	}

	liked, err := api.ListLiked(creds.UserID)
	if err != nil {
		formatter.PrintError("Failed to fetch liked projects: %v", err)
		return err
	}

	saved, err := api.ListSaved(creds.UserID)
	if err != nil {
		formatter.PrintError("Failed to fetch saved projects: %v", err)
		return err
	}

	fmt.Println()
	formatter.Bold.Println(creds.Label())
	keyValues := map[string]interface{}{
		"Email":    creds.Email,
		"Projects": len(mine),
		"Liked":    len(liked),
		"Saved":    len(saved),
	}
	formatter.PrintKeyValue(keyValues)

	return nil
}

// SetDisplayName updates the display name on the Identity Service and
// refreshes the persisted session.
func (s *ProfileService) SetDisplayName(name string) error {
	if strings.TrimSpace(name) == "" {
		formatter.PrintError("Display name cannot be empty")
		return cerrors.ValidationError("display name", "cannot be empty")
	}

	if _, err := requireSession(); err != nil {
		return err
	}

	token, err := identity.FreshToken()
	if err != nil {
		return err
	}

	if err := identity.UpdateDisplayName(token, name); err != nil {
		formatter.PrintError("Failed to update display name: %v", err)
		return err
	}

	// Keep the persisted session in step with the Identity Service.
	if creds, err := credentials.Load(); err == nil && creds != nil {
		creds.DisplayName = name
		if err := credentials.Save(creds); err != nil {
			logger.Error("Failed to save credentials", "error", err)
		}
	}

	formatter.PrintSuccess("✓ Display name updated to %s", name)
	return nil
}

// Liked lists the projects the user currently likes
func (s *ProfileService) Liked() error {
	creds, err := authenticate()
	if err != nil {
		return err
	}

	projects, err := api.ListLiked(creds.UserID)
	if err != nil {
		formatter.PrintError("Failed to fetch liked projects: %v", err)
		return err
	}

	printProjectList("Liked projects", projects, creds.UserID)
	return nil
}

// Saved lists the projects the user has saved
func (s *ProfileService) Saved() error {
	creds, err := authenticate()
	if err != nil {
		return err
	}

	projects, err := api.ListSaved(creds.UserID)
	if err != nil {
		formatter.PrintError("Failed to fetch saved projects: %v", err)
		return err
	}

	printProjectList("Saved projects", projects, creds.UserID)
	return nil
}
