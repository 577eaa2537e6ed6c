// Show command: dump the current document.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/folio/internal/session"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current portfolio document",
	Long: `Show prints the current document as indented JSON, exactly as it
would be saved (including a backfilled config section for older files).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session.Session) error {
			doc, err := s.View()
			if err != nil {
				return err
			}
			return printJSON(doc)
		})
	},
}
