// Package main is the entry point for the minuta CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minutekit/minuta/internal/config"
	"github.com/minutekit/minuta/internal/store"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// rootOptions carries the global flags into every verb.
type rootOptions struct {
	configPath string
	dataDir    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "minuta",
		Short:         "Meeting-note sessions on the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "session store directory (overrides config)")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	addNew(cmd, opts)
	addImport(cmd, opts)
	addExport(cmd, opts)
	addList(cmd, opts)
	addRm(cmd, opts)
	addVersion(cmd)

	return cmd
}

// openStore resolves configuration and opens the session store, for the
// verbs that work on stored sessions directly.
func openStore(opts *rootOptions) (config.Config, *store.Store, error) {
	path := opts.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Config{}, nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, err
	}
	if opts.dataDir != "" {
		cfg.Storage.Dir = opts.dataDir
	}
	dir, err := cfg.StorageDir()
	if err != nil {
		return config.Config{}, nil, err
	}
	st, err := store.Open(dir)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, st, nil
}

func addVersion(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("minuta %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
		},
	}
	topLevel.AddCommand(cmd)
}
