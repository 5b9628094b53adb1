package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/spektr-org/newsdash/config"
	"github.com/spektr-org/newsdash/dataset"
	"github.com/spektr-org/newsdash/tui"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	config string
	data   string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "newsdash",
		Short: "Dashboard for a news article snapshot",
		Long: `newsdash loads a CSV snapshot of collected news articles, filters it by
category and source, and shows the data grid, summary statistics, a bar chart
of categories, and a proportional chart of sources.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, g)
		},
	}

	root.PersistentFlags().StringVar(&g.config, "config", "", "path to config file (default $XDG_CONFIG_HOME/newsdash/config.yaml)")
	root.PersistentFlags().StringVar(&g.data, "data", "", "snapshot path or s3://bucket/key (overrides data_path)")

	root.AddCommand(
		&cobra.Command{
			Use:   "tui",
			Short: "Open the interactive dashboard (default)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTUI(cmd, g)
			},
		},
		newShowCmd(g),
		newServeCmd(g),
		newColumnsCmd(g),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "newsdash %s (commit: %s)\n", version, commit)
			},
		},
	)
	return root
}

// load reads the config and the snapshot it points to. A missing snapshot
// is not an error: the Dataset comes back Empty with a Warning.
func load(ctx context.Context, g *globalFlags) (*config.Config, *dataset.Dataset, error) {
	cfg, err := config.Load(g.config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if g.data != "" {
		cfg.DataPath = g.data
	}

	dataset.Configure(cfg.DatasetOptions())
	return cfg, dataset.Load(ctx, cfg.DataPath), nil
}

func runTUI(cmd *cobra.Command, g *globalFlags) error {
	cfg, ds, err := load(cmd.Context(), g)
	if err != nil {
		return err
	}

	// Engine logging would draw over the alternate screen.
	if path := os.Getenv("NEWSDASH_LOG"); path != "" {
		f, err := tea.LogToFile(path, "newsdash")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	return tui.Run(ds, cfg.EngineOptions()...)
}
