package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/robustls/robustls/internal/config"
	"github.com/robustls/robustls/internal/index"
	"github.com/robustls/robustls/internal/ingest"
	"github.com/robustls/robustls/internal/logging"
	"github.com/robustls/robustls/internal/lspinit"
	"github.com/robustls/robustls/internal/progress"
	"github.com/robustls/robustls/internal/transport"
)

// version is overwritten at release build time via -ldflags.
var version = "dev"

var bold = color.New(color.Bold).SprintFunc()

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := &cobra.Command{
		Use:           "robustls",
		Short:         "Cross-language language server for Space Station 14-style game projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd)
		},
	}
	root.Flags().BoolP("version", "v", false, "print the version and exit")
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", bold("error:"), err)
		return 1
	}
	return 0
}

func serve(cmd *cobra.Command) error {
	showVersion, _ := cmd.Flags().GetBool("version")
	if showVersion {
		fmt.Printf("robustls %s\n", version)
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve workspace root: %w", err)
	}
	if !lspinit.DetectProjectRoot(wd) {
		return fmt.Errorf("workspace root %s contains neither %s", wd, markerList())
	}

	cfg := config.Load(wd)
	logger := logging.NewStderr(cfg.LogLevel)
	idx := index.New()

	ingestor := &ingest.Ingestor{
		Root:        cfg.WorkspaceRoot,
		Subtrees:    config.Subtrees,
		Index:       idx,
		Logger:      logger,
		Progress:    progress.LogReporter{Logger: logger},
		Concurrency: 0,
	}
	if err := ingestor.Run(cmd.Context()); err != nil {
		return fmt.Errorf("initial ingest: %w", err)
	}

	var t transport.Transport = transport.Stdio{}
	return t.Serve(os.Stdin, os.Stdout)
}

func markerList() string {
	out := ""
	for i, m := range config.ProjectMarkers {
		if i > 0 {
			out += " or "
		}
		out += m
	}
	return out
}
