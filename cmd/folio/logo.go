// Logo commands (the config section's logo).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/folio/internal/repo"
	"github.com/mesh-intelligence/folio/pkg/types"
)

var (
	logoType    string
	logoContent string
)

var logoCmd = &cobra.Command{
	Use:   "logo",
	Short: "Manage the site logo",
}

var logoSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the logo type or content",
	Long: `Set updates the logo and saves. Type "text" renders content as
literal text; type "image" treats content as an asset path. Omitted
flags keep their current values.

Example:
  folio logo set --type text --content "Ada Animates"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(func(r *repo.Repository) error {
			cfg := r.Config()
			if cmd.Flags().Changed("type") {
				cfg.Logo.Type = logoType
			}
			if cmd.Flags().Changed("content") {
				cfg.Logo.Content = logoContent
			}
			if err := r.SetConfig(cfg); err != nil {
				return err
			}
			fmt.Println("Logo updated")
			return nil
		})
	},
}

var logoUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Copy an image into the assets directory and use it as the logo",
	Long: `Upload copies the image into the site's assets directory, stores the
resulting path as the logo content, and switches the logo type to
"image".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dirs, err := assetDirs()
		if err != nil {
			return err
		}
		stored, err := dirs.ImportLogo(args[0])
		if err != nil {
			return err
		}

		return mutate(func(r *repo.Repository) error {
			cfg := r.Config()
			cfg.Logo = types.Logo{Type: types.LogoTypeImage, Content: stored}
			if err := r.SetConfig(cfg); err != nil {
				return err
			}
			fmt.Printf("Logo set to %s\n", stored)
			return nil
		})
	},
}

func init() {
	logoSetCmd.Flags().StringVar(&logoType, "type", "", `logo type: "text" or "image"`)
	logoSetCmd.Flags().StringVar(&logoContent, "content", "", "logo text or asset path")

	logoCmd.AddCommand(logoSetCmd)
	logoCmd.AddCommand(logoUploadCmd)
}
