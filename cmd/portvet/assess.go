package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/portvet/portvet/pkg/collect"
	"github.com/portvet/portvet/pkg/config"
	"github.com/portvet/portvet/pkg/portability"
	"github.com/portvet/portvet/pkg/surface"
)

func newAssessCmd() *cobra.Command {
	var (
		outputFmt      string
		reportPath     string
		failOnBlocking bool
	)

	cmd := &cobra.Command{
		Use:   "assess [path]",
		Short: "Score a repository's App Service portability",
		Long: `Collects the repository's files, runs the portability rule set, and
renders the score, the detected issues, and a migration recommendation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runAssess(root, outputFmt, reportPath, failOnBlocking)
		},
	}

	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json, or markdown")
	cmd.Flags().StringVar(&reportPath, "report", "", "Also write the full JSON report to this file")
	cmd.Flags().BoolVar(&failOnBlocking, "fail-on-blocking", false, "Exit nonzero when the result is blocking")

	return cmd
}

func runAssess(root, outputFmt, reportPath string, failOnBlocking bool) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", root, err)
	}

	cfg := config.DefaultConfig()
	if cfgPath := config.FindConfigFile(absRoot); cfgPath != "" {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
	}

	collector := &collect.Collector{
		MaxFileBytes: cfg.Collect.MaxFileBytes,
		Excludes:     cfg.Collect.Exclude,
	}
	files, err := collector.Collect(absRoot)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Collected %d files from %s\n", len(files), absRoot)

	result := portability.Score(files)

	renderer, err := rendererFor(outputFmt)
	if err != nil {
		return err
	}
	if err := renderer.Render(os.Stdout, result); err != nil {
		return fmt.Errorf("rendering result: %w", err)
	}

	if reportPath != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		if err := os.WriteFile(reportPath, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", reportPath)
	}

	if failOnBlocking && result.Severity == portability.SeverityBlocking {
		return fmt.Errorf("assessment blocked: score %d is in the cannot-port tier", result.Score)
	}
	return nil
}

func rendererFor(format string) (surface.Renderer, error) {
	switch format {
	case "text":
		return &surface.TerminalRenderer{}, nil
	case "json":
		return &surface.JSONRenderer{}, nil
	case "markdown":
		return &surface.MarkdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json, or markdown)", format)
	}
}
