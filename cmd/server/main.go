// Package main is the news-api command: it serves the HTTP API, seeds a
// development database and prints the route table.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. The --config flag is shared by every
// subcommand that loads configuration.
func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "news-api",
		Short:         "A REST API for news articles, comments, topics and users",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a YAML config file (default: ./news-api.yaml if present)")

	rootCmd.AddCommand(newServeCmd(&configPath))
	rootCmd.AddCommand(newSeedCmd(&configPath))
	rootCmd.AddCommand(newRoutesCmd())

	return rootCmd
}
