package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/atelierlabs/atelier/internal/config"
	"github.com/atelierlabs/atelier/internal/tui"
)

func newInitCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a brief file interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return writeExampleBrief(cmd, outputPath)
			}

			program := tea.NewProgram(tui.New())
			final, err := program.Run()
			if err != nil {
				return err
			}

			wizard, ok := final.(tui.Model)
			if !ok || !wizard.Done() {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted, no brief written")
				return nil
			}

			return writeBrief(cmd, wizard.Brief(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "brief.yaml", "Where to write the brief")

	return cmd
}

// writeExampleBrief covers non-interactive runs: it writes a commented
// starter document instead of launching the wizard.
func writeExampleBrief(cmd *cobra.Command, path string) error {
	return writeBrief(cmd, config.Brief{
		Version:     "1.0",
		Name:        "my-design-system",
		ProductIdea: "Describe what the product does here",
		TargetUsers: []string{"b2b"},
		BrandTraits: []string{"modern", "professional"},
		Platforms:   []string{"web"},
	}, path)
}

func writeBrief(cmd *cobra.Command, doc config.Brief, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, not overwriting", path)
	}

	raw, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "brief written to %s\n", path)
	return nil
}
