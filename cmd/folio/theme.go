// Theme commands (the config section's colors and fonts).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/folio/internal/repo"
)

var (
	themePrimary     string
	themeSecondary   string
	themeBackground  string
	themeText        string
	themeFontHeading string
	themeFontBody    string
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the site theme",
}

var themeSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update theme colors and fonts",
	Long: `Set updates the given theme fields and saves. Omitted flags keep
their current values.

Example:
  folio theme set --primary-color "#1E3A8A" --font-heading Poppins`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(func(r *repo.Repository) error {
			cfg := r.Config()
			if cmd.Flags().Changed("primary-color") {
				cfg.Theme.PrimaryColor = themePrimary
			}
			if cmd.Flags().Changed("secondary-color") {
				cfg.Theme.SecondaryColor = themeSecondary
			}
			if cmd.Flags().Changed("background-color") {
				cfg.Theme.BackgroundColor = themeBackground
			}
			if cmd.Flags().Changed("text-color") {
				cfg.Theme.TextColor = themeText
			}
			if cmd.Flags().Changed("font-heading") {
				cfg.Theme.FontHeading = themeFontHeading
			}
			if cmd.Flags().Changed("font-body") {
				cfg.Theme.FontBody = themeFontBody
			}
			if err := r.SetConfig(cfg); err != nil {
				return err
			}
			fmt.Println("Theme updated")
			return nil
		})
	},
}

func init() {
	themeSetCmd.Flags().StringVar(&themePrimary, "primary-color", "", "primary color")
	themeSetCmd.Flags().StringVar(&themeSecondary, "secondary-color", "", "secondary color")
	themeSetCmd.Flags().StringVar(&themeBackground, "background-color", "", "background color")
	themeSetCmd.Flags().StringVar(&themeText, "text-color", "", "text color")
	themeSetCmd.Flags().StringVar(&themeFontHeading, "font-heading", "", "heading font name")
	themeSetCmd.Flags().StringVar(&themeFontBody, "font-body", "", "body font name")

	themeCmd.AddCommand(themeSetCmd)
}
