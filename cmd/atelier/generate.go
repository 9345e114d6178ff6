package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atelierlabs/atelier/internal/config"
	"github.com/atelierlabs/atelier/internal/export"
	"github.com/atelierlabs/atelier/internal/logger"
	"github.com/atelierlabs/atelier/internal/pipeline"
	"github.com/atelierlabs/atelier/internal/ui"
)

type generateOptions struct {
	BriefPath string
	OutputDir string
	GitInit   bool
	JSON      bool
	Verbose   bool
	Plain     bool
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a design system from a brief",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			opts.Plain = !term.IsTerminal(int(os.Stdout.Fd()))
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.BriefPath, "brief", "c", "", "Path to the brief file")
	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "Output directory (overrides the brief's setting)")
	cmd.Flags().BoolVar(&opts.GitInit, "git-init", false, "Initialize a git repository in the output directory")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the full output as JSON instead of a summary")
	cmd.MarkFlagRequired("brief") //nolint:errcheck

	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	doc, err := config.ParseBrief(opts.BriefPath)
	if err != nil {
		return err
	}
	brief, err := doc.ToModel()
	if err != nil {
		return err
	}

	log, err := newLogger(opts.Verbose || doc.Settings.Verbose, opts.Plain)
	if err != nil {
		return err
	}

	out, err := pipeline.Generate(brief, pipeline.Options{
		Name:        doc.Name,
		GeneratedAt: time.Now().UTC(),
		Logger:      log,
	})
	if err != nil {
		return err
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = doc.Settings.OutputDir
	}
	if dir == "" {
		dir = "design-system"
	}

	written, err := export.Write(out, export.Options{
		Dir:     dir,
		GitInit: opts.GitInit,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	if opts.JSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	if opts.Plain {
		fmt.Fprint(cmd.OutOrStdout(), ui.PlainSummary(out))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), ui.Summary(out))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d files written to %s\n", len(written), dir)
	return nil
}

func newLogger(verbose, plain bool) (*logger.Logger, error) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, Pretty: !plain})
}
