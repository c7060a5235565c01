package service

import (
	"github.com/devnest/cli/pkg/api"
	"github.com/devnest/cli/pkg/formatter"
)

type FavoritesService struct{}

// NewFavoritesService creates a new favorites service
func NewFavoritesService() *FavoritesService {
	return &FavoritesService{}
}

// List shows the projects the user has favorited, per the server's record
func (s *FavoritesService) List() error {
	creds, err := authenticate()
	if err != nil {
		return err
	}

	projects, err := api.ListFavorites(creds.UserID)
	if err != nil {
		formatter.PrintError("Failed to fetch favorites: %v", err)
		return err
	}

	printProjectList("Favorites", projects, creds.UserID)
	return nil
}
