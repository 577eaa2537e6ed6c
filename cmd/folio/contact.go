// Contact section commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/folio/internal/repo"
)

var (
	contactEmail        string
	contactLocation     string
	contactAvailability string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage contact information",
}

var contactSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update contact fields",
	Long: `Set updates the contact section's text fields and saves. Omitted
flags keep their current values. Social links are managed with the
social command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(func(r *repo.Repository) error {
			c := r.Contact()
			if cmd.Flags().Changed("email") {
				c.Email = contactEmail
			}
			if cmd.Flags().Changed("location") {
				c.Location = contactLocation
			}
			if cmd.Flags().Changed("availability") {
				c.Availability = contactAvailability
			}
			r.SetContact(c)
			fmt.Println("Contact information updated")
			return nil
		})
	},
}

func init() {
	contactSetCmd.Flags().StringVar(&contactEmail, "email", "", "contact email")
	contactSetCmd.Flags().StringVar(&contactLocation, "location", "", "location")
	contactSetCmd.Flags().StringVar(&contactAvailability, "availability", "", "availability status")

	contactCmd.AddCommand(contactSetCmd)
}
