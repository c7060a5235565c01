package cmd

import (
	"github.com/devnest/cli/pkg/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile commands",
	Long:  "View and manage your DevNest profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileSvc := service.NewProfileService()
		return profileSvc.Show()
	},
}

var profileSetNameCmd = &cobra.Command{
	Use:   "set-name <display-name>",
	Short: "Update your display name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileSvc := service.NewProfileService()
		return profileSvc.SetDisplayName(args[0])
	},
}

var profileLikedCmd = &cobra.Command{
	Use:   "liked",
	Short: "List projects you have liked",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileSvc := service.NewProfileService()
		return profileSvc.Liked()
	},
}

var profileSavedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List projects you have saved",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileSvc := service.NewProfileService()
		return profileSvc.Saved()
	},
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetNameCmd)
	profileCmd.AddCommand(profileLikedCmd)
	profileCmd.AddCommand(profileSavedCmd)
}
