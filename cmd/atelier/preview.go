package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atelierlabs/atelier/internal/config"
	"github.com/atelierlabs/atelier/internal/pipeline"
	"github.com/atelierlabs/atelier/internal/ui"
)

func newPreviewCmd(root *rootFlags) *cobra.Command {
	var briefPath string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview principles, tokens, and components without writing files",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := config.ParseBrief(briefPath)
			if err != nil {
				return err
			}
			brief, err := doc.ToModel()
			if err != nil {
				return err
			}

			log, err := newLogger(root.verbose, true)
			if err != nil {
				return err
			}

			out, err := pipeline.Preview(brief, pipeline.Options{
				Name:        doc.Name,
				GeneratedAt: time.Now().UTC(),
				Logger:      log,
			})
			if err != nil {
				return err
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Fprint(cmd.OutOrStdout(), ui.Summary(out))
			} else {
				fmt.Fprint(cmd.OutOrStdout(), ui.PlainSummary(out))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&briefPath, "brief", "c", "", "Path to the brief file")
	cmd.MarkFlagRequired("brief") //nolint:errcheck

	return cmd
}
