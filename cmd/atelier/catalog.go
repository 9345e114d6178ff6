package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelierlabs/atelier/internal/catalog"
	"github.com/atelierlabs/atelier/internal/ui"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the component catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), ui.ComponentList(catalog.All()))
			return nil
		},
	}

	return cmd
}
