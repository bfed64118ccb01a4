// Package main provides the portvet CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "portvet",
		Short: "Portability assessment for App Service migrations",
		Long: `Portvet inspects a repository's files, scores how feasible an automated
migration to App Service would be, and explains what stands in the way.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newAssessCmd(),
		newRulesCmd(),
		newRenderCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
