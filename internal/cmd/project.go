package cmd

import (
	"strconv"

	"github.com/devnest/cli/pkg/service"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project commands",
	Long:  "Create, browse and interact with DevNest projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Share a new project",
	RunE: func(cmd *cobra.Command, args []string) error {
		projectSvc := service.NewProjectService()
		return projectSvc.Create()
	},
}

var projectMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your own projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		projectSvc := service.NewProjectService()
		return projectSvc.Mine()
	},
}

var projectViewCmd = &cobra.Command{
	Use:   "view <project-id>",
	Short: "Show a project with its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectSvc := service.NewProjectService()
		return projectSvc.View(args[0])
	},
}

var projectEditCmd = &cobra.Command{
	Use:   "edit <project-id>",
	Short: "Edit one of your projects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectSvc := service.NewProjectService()
		return projectSvc.Edit(args[0])
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <project-id>",
	Short: "Delete one of your projects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectSvc := service.NewProjectService()
		return projectSvc.Delete(args[0])
	},
}

var projectLikeCmd = &cobra.Command{
	Use:   "like <project-id>",
	Short: "Like or unlike a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exploreSvc := service.NewExploreService()
		return exploreSvc.Like(args[0])
	},
}

var projectSaveCmd = &cobra.Command{
	Use:   "save <project-id>",
	Short: "Save or unsave a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exploreSvc := service.NewExploreService()
		return exploreSvc.Save(args[0])
	},
}

var projectFavoriteCmd = &cobra.Command{
	Use:   "favorite <project-id>",
	Short: "Add or remove a project from favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exploreSvc := service.NewExploreService()
		return exploreSvc.Favorite(args[0])
	},
}

var projectRateCmd = &cobra.Command{
	Use:   "rate <project-id> <stars>",
	Short: "Rate a project from 1 to 5 stars",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		stars, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		exploreSvc := service.NewExploreService()
		return exploreSvc.Rate(args[0], stars)
	},
}

var projectCommentCmd = &cobra.Command{
	Use:   "comment <project-id>",
	Short: "Comment on a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectSvc := service.NewProjectService()
		return projectSvc.Comment(args[0])
	},
}

func init() {
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectMineCmd)
	projectCmd.AddCommand(projectViewCmd)
	projectCmd.AddCommand(projectEditCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(projectLikeCmd)
	projectCmd.AddCommand(projectSaveCmd)
	projectCmd.AddCommand(projectFavoriteCmd)
	projectCmd.AddCommand(projectRateCmd)
	projectCmd.AddCommand(projectCommentCmd)
}
