// Social link list commands (the contact section's social list).
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
	socialAddPlatform string
	socialAddURL      string
	socialAddIcon     string

	socialUpdPlatform string
	socialUpdURL      string
	socialUpdIcon     string
)

var socialCmd = &cobra.Command{
	Use:   "social",
	Short: "Manage social media links",
}

var socialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List social links in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session.Session) error {
			links := s.Repo().Social()
			if flagJSON {
				return printJSON(links)
			}
			for i, l := range links {
				fmt.Printf("%d. %s %s: %s\n", i+1, l.Icon, l.Platform, l.URL)
			}
			return nil
		})
	},
}

var socialAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a social link",
	Example: `  folio social add --platform Instagram --url https://instagram.com/me --icon 📷`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(func(r *repo.Repository) error {
			stored := r.AddSocial(types.SocialLink{
				Platform: socialAddPlatform,
				URL:      socialAddURL,
				Icon:     socialAddIcon,
			})
			fmt.Printf("Added %s\n", stored.Platform)
			return nil
		})
	},
}

var socialUpdateCmd = &cobra.Command{
	Use:   "update <position>",
	Short: "Update the social link at a position (1-based)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return mutate(func(r *repo.Repository) error {
			links := r.Social()
			if index >= len(links) {
				return r.UpdateSocial(index, types.SocialLink{})
			}
			l := links[index]
			if cmd.Flags().Changed("platform") {
				l.Platform = socialUpdPlatform
			}
			if cmd.Flags().Changed("url") {
				l.URL = socialUpdURL
			}
			if cmd.Flags().Changed("icon") {
				l.Icon = socialUpdIcon
			}
			if err := r.UpdateSocial(index, l); err != nil {
				return err
			}
			fmt.Println("Social link updated")
			return nil
		})
	},
}

var socialRemoveCmd = &cobra.Command{
	Use:   "remove <position>",
	Short: "Remove the social link at a position (1-based)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return mutate(func(r *repo.Repository) error {
			removed, err := r.RemoveSocial(index)
			if err != nil {
				return err
			}
			fmt.Printf("Removed: %s\n", removed.Platform)
			return nil
		})
	},
}

func init() {
	socialAddCmd.Flags().StringVar(&socialAddPlatform, "platform", "", "platform name (required)")
	socialAddCmd.Flags().StringVar(&socialAddURL, "url", "", "profile URL")
	socialAddCmd.Flags().StringVar(&socialAddIcon, "icon", "🔗", "icon emoji")
	_ = socialAddCmd.MarkFlagRequired("platform")

	socialUpdateCmd.Flags().StringVar(&socialUpdPlatform, "platform", "", "platform name")
	socialUpdateCmd.Flags().StringVar(&socialUpdURL, "url", "", "profile URL")
	socialUpdateCmd.Flags().StringVar(&socialUpdIcon, "icon", "", "icon emoji")

	socialCmd.AddCommand(socialListCmd)
	socialCmd.AddCommand(socialAddCmd)
	socialCmd.AddCommand(socialUpdateCmd)
	socialCmd.AddCommand(socialRemoveCmd)
}
