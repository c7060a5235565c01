package cmd

import (
	"github.com/devnest/cli/pkg/feed"
	"github.com/devnest/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	exploreSearch string
	exploreTag    string
	exploreUser   string
	explorePage   int
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse the community project feed",
	Long: `Browse all shared projects, nine per page. Filter by a keyword
against title and description, by an exact tag, or by author name.
Filters combine; all must match.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exploreSvc := service.NewExploreService()
		return exploreSvc.Browse(feed.FilterState{
			Keyword: exploreSearch,
			Tag:     exploreTag,
			User:    exploreUser,
			Page:    explorePage,
		})
	},
}

func init() {
	exploreCmd.Flags().StringVar(&exploreSearch, "search", "", "Keyword filter on title and description")
	exploreCmd.Flags().StringVar(&exploreTag, "tag", "", "Exact tag filter")
	exploreCmd.Flags().StringVar(&exploreUser, "user", "", "Author name filter")
	exploreCmd.Flags().IntVar(&explorePage, "page", 1, "Page number")
}
