// Init command: write a starter portfolio document.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/folio/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter portfolio document",
	Long: `Init writes an empty portfolio document with the default theme and
logo at the resolved document path. It refuses to overwrite an existing
document; sessions never fabricate one implicitly, so init is the only
way folio creates the file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}

		if _, err := os.Stat(st.DataFile()); err == nil {
			return fmt.Errorf("%w: document already exists at %s", types.ErrValidation, st.DataFile())
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", st.DataFile(), err)
		}

		doc := &types.Document{
			About:    types.About{Expertise: []string{}},
			Skills:   []types.Skill{},
			Projects: []types.Project{},
			Contact:  types.Contact{Social: []types.SocialLink{}},
			Config:   types.DefaultConfig(),
		}
		if err := st.Save(doc, false); err != nil {
			return err
		}

		fmt.Println("Portfolio document created")
		fmt.Println("  document:", st.DataFile())
		fmt.Println("  backups: ", st.BackupDir())
		return nil
	},
}
