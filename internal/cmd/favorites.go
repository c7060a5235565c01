package cmd

import (
	"github.com/devnest/cli/pkg/service"
	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List your favorite projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		favSvc := service.NewFavoritesService()
		return favSvc.List()
	},
}
