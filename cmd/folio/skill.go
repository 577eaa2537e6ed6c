// Skill list commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/folio/internal/repo"
	"github.com/mesh-intelligence/folio/internal/session"
	"github.com/mesh-intelligence/folio/pkg/types"
)

// Flag values, one set per command: pflag writes the default into the
// bound variable at registration, so add and update must not share.
var (
	skillAddName        string
	skillAddCategory    string
	skillAddProficiency int
	skillAddIcon        string

	skillUpdName        string
	skillUpdCategory    string
	skillUpdProficiency int
	skillUpdIcon        string
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage the skills list",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session.Session) error {
			skills := s.Repo().Skills()
			if flagJSON {
				return printJSON(skills)
			}
			for i, sk := range skills {
				fmt.Printf("%d. %s %s (%s) - %d%%\n", i+1, sk.Icon, sk.Name, sk.Category, sk.Proficiency)
			}
			return nil
		})
	},
}

var skillAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a skill",
	Long: `Add appends a skill to the end of the list. Proficiency outside
[0, 100] is clamped into range, not rejected.

Example:
  folio skill add --name Sketching --category Traditional --proficiency 90 --icon ✎`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(func(r *repo.Repository) error {
			stored := r.AddSkill(types.Skill{
				Name:        skillAddName,
				Category:    skillAddCategory,
				Proficiency: skillAddProficiency,
				Icon:        skillAddIcon,
			})
			fmt.Printf("Added skill: %s (%d%%)\n", stored.Name, stored.Proficiency)
			return nil
		})
	},
}

var skillUpdateCmd = &cobra.Command{
	Use:   "update <position>",
	Short: "Update the skill at a position (1-based)",
	Long: `Update replaces the given fields of the skill at the position.
Omitted flags keep their current values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return mutate(func(r *repo.Repository) error {
			skills := r.Skills()
			if index >= len(skills) {
				// Let the repository produce the canonical error.
				return r.UpdateSkill(index, types.Skill{})
			}
			sk := skills[index]
			if cmd.Flags().Changed("name") {
				sk.Name = skillUpdName
			}
			if cmd.Flags().Changed("category") {
				sk.Category = skillUpdCategory
			}
			if cmd.Flags().Changed("proficiency") {
				sk.Proficiency = skillUpdProficiency
			}
			if cmd.Flags().Changed("icon") {
				sk.Icon = skillUpdIcon
			}
			if err := r.UpdateSkill(index, sk); err != nil {
				return err
			}
			fmt.Println("Skill updated")
			return nil
		})
	},
}

var skillRemoveCmd = &cobra.Command{
	Use:   "remove <position>",
	Short: "Remove the skill at a position (1-based)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return mutate(func(r *repo.Repository) error {
			removed, err := r.RemoveSkill(index)
			if err != nil {
				return err
			}
			fmt.Printf("Removed: %s\n", removed.Name)
			return nil
		})
	},
}

func init() {
	skillAddCmd.Flags().StringVar(&skillAddName, "name", "", "skill name (required)")
	skillAddCmd.Flags().StringVar(&skillAddCategory, "category", "", "skill category")
	skillAddCmd.Flags().IntVar(&skillAddProficiency, "proficiency", 0, "proficiency 0-100 (out-of-range values are clamped)")
	skillAddCmd.Flags().StringVar(&skillAddIcon, "icon", "⚡", "icon emoji")
	_ = skillAddCmd.MarkFlagRequired("name")

	skillUpdateCmd.Flags().StringVar(&skillUpdName, "name", "", "skill name")
	skillUpdateCmd.Flags().StringVar(&skillUpdCategory, "category", "", "skill category")
	skillUpdateCmd.Flags().IntVar(&skillUpdProficiency, "proficiency", 0, "proficiency 0-100 (out-of-range values are clamped)")
	skillUpdateCmd.Flags().StringVar(&skillUpdIcon, "icon", "", "icon emoji")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillAddCmd)
	skillCmd.AddCommand(skillUpdateCmd)
	skillCmd.AddCommand(skillRemoveCmd)
}
