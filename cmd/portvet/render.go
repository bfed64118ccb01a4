package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/portvet/portvet/pkg/portability"
)

func newRenderCmd() *cobra.Command {
	var (
		inputPath string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Re-render a saved JSON assessment report",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("reading report: %w", err)
			}

			var result portability.Result
			if err := json.Unmarshal(data, &result); err != nil {
				return fmt.Errorf("parsing report: %w", err)
			}

			renderer, err := rendererFor(outputFmt)
			if err != nil {
				return err
			}
			return renderer.Render(os.Stdout, &result)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to a JSON report produced by assess --report (required)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json, or markdown")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
