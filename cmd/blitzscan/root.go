package main

import (
	"context"

	"github.com/spf13/cobra"

	"blitzscan/cmd/blitzscan/scan"
	"blitzscan/cmd/blitzscan/server"
)

func Execute() error {
	var rootCmd = &cobra.Command{
		Use:   "blitzscan",
		Short: "Security scan orchestration backend",
		Long:  `BlitzScan runs recon tools against a target, parses their output and serves the results over HTTP`,
	}

	rootCmd.AddCommand(scan.NewScanCommand())
	rootCmd.AddCommand(server.NewServerCommand())
	return rootCmd.ExecuteContext(context.Background())
}
