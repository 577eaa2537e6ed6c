// Expertise list commands (the about section's expertise areas).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/folio/internal/repo"
	"github.com/mesh-intelligence/folio/internal/session"
)

var expertiseCmd = &cobra.Command{
	Use:   "expertise",
	Short: "Manage expertise areas",
}

var expertiseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expertise areas in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session.Session) error {
			entries := s.Repo().Expertise()
			if flagJSON {
				return printJSON(entries)
			}
			for i, entry := range entries {
				fmt.Printf("%d. %s\n", i+1, entry)
			}
			return nil
		})
	},
}

var expertiseAddCmd = &cobra.Command{
	Use:   "add <area>",
	Short: "Append an expertise area",
	Example: `  folio expertise add "Character Design"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(func(r *repo.Repository) error {
			stored, err := r.AddExpertise(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Added: %s\n", stored)
			return nil
		})
	},
}

var expertiseRemoveCmd = &cobra.Command{
	Use:   "remove <position>",
	Short: "Remove the expertise area at a position (1-based)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return mutate(func(r *repo.Repository) error {
			removed, err := r.RemoveExpertise(index)
			if err != nil {
				return err
			}
			fmt.Printf("Removed: %s\n", removed)
			return nil
		})
	},
}

func init() {
	expertiseCmd.AddCommand(expertiseListCmd)
	expertiseCmd.AddCommand(expertiseAddCmd)
	expertiseCmd.AddCommand(expertiseRemoveCmd)
}
