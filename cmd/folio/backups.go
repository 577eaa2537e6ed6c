// Backups command: list the backup trail.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List the document's backup trail",
	Long: `Backups lists the timestamped copies taken before each save, oldest
first. The trail is append-only; folio never prunes it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}

		names, err := st.Backups()
		if err != nil {
			return err
		}

		if flagJSON {
			if names == nil {
				names = []string{}
			}
			return printJSON(names)
		}

		if len(names) == 0 {
			fmt.Println("No backups yet")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}
