package cmd

import (
	"github.com/devnest/cli/pkg/feed"
	"github.com/devnest/cli/pkg/service"
	"github.com/spf13/cobra"
)

var feedPage int

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the recent projects feed",
	Long:  "Show the unfiltered community feed, nine projects per page.",
	RunE: func(cmd *cobra.Command, args []string) error {
		exploreSvc := service.NewExploreService()
		return exploreSvc.Browse(feed.FilterState{Page: feedPage})
	},
}

func init() {
	feedCmd.Flags().IntVar(&feedPage, "page", 1, "Page number")
}
