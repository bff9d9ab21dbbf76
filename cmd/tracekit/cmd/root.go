// Package cmd provides the command-line interface for tracekit.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "tracekit",
	Short: "Tracekit CLI tool can inspect the traces recorded by the " +
		"tracing package.",
	Long: `Tracekit CLI tool can inspect the traces recorded by the tracing ` +
		`package. Currently, it supports dumping recorded traces to the ` +
		`terminal and serving them over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
