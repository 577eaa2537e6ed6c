package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/folio/pkg/folio"
)

const modulePath = "github.com/mesh-intelligence/folio"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the folio version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "folio v%s\nmodule: %s\n", folio.Version, modulePath)
		return nil
	},
}
