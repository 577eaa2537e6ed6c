// About section commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/folio/internal/repo"
)

var (
	aboutBio         string
	aboutDescription string
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Manage the about section",
}

var aboutSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the bio or description",
	Long: `Set updates the about section's text fields and saves. Omitted flags
keep their current values. Expertise areas are managed with the
expertise command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(func(r *repo.Repository) error {
			a := r.About()
			if cmd.Flags().Changed("bio") {
				a.Bio = aboutBio
			}
			if cmd.Flags().Changed("description") {
				a.Description = aboutDescription
			}
			r.SetAbout(a)
			fmt.Println("About section updated")
			return nil
		})
	},
}

func init() {
	aboutSetCmd.Flags().StringVar(&aboutBio, "bio", "", "short biography")
	aboutSetCmd.Flags().StringVar(&aboutDescription, "description", "", "longer description")

	aboutCmd.AddCommand(aboutSetCmd)
}
