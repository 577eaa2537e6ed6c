// Personal section commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/folio/internal/repo"
)

var (
	personalName    string
	personalTitle   string
	personalTagline string
	personalHero    string
)

var personalCmd = &cobra.Command{
	Use:   "personal",
	Short: "Manage personal information",
}

var personalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update personal information fields",
	Long: `Set updates the given personal fields and saves. Omitted flags keep
their current values.

Example:
  folio personal set --name "Ada Lovelace" --title "Animator"
  folio personal set --tagline "moving pictures"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(func(r *repo.Repository) error {
			p := r.Personal()
			if cmd.Flags().Changed("name") {
				p.Name = personalName
			}
			if cmd.Flags().Changed("title") {
				p.Title = personalTitle
			}
			if cmd.Flags().Changed("tagline") {
				p.Tagline = personalTagline
			}
			if cmd.Flags().Changed("hero") {
				p.HeroDescription = personalHero
			}
			r.SetPersonal(p)
			fmt.Println("Personal information updated")
			return nil
		})
	},
}

func init() {
	personalSetCmd.Flags().StringVar(&personalName, "name", "", "display name")
	personalSetCmd.Flags().StringVar(&personalTitle, "title", "", "professional title")
	personalSetCmd.Flags().StringVar(&personalTagline, "tagline", "", "short tagline")
	personalSetCmd.Flags().StringVar(&personalHero, "hero", "", "hero section description")

	personalCmd.AddCommand(personalSetCmd)
}
