package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"blitzscan/internal/config"
	"blitzscan/internal/notification"
	"blitzscan/internal/services"
	"blitzscan/pkg/logger"
	"blitzscan/pkg/runner"
	"blitzscan/pkg/tools"
)

// NewScanCommand runs a single tool against a target and prints the parsed
// result as JSON, without touching the database.
func NewScanCommand() *cobra.Command {
	var (
		tool    string
		target  string
		verbose bool
	)

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Run one scanner tool against a target",
		Long:  `Run a single recon tool against the given target and print the parsed result`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			logLevel := logrus.InfoLevel
			if verbose {
				logLevel = logrus.DebugLevel
			}
			appLogger := logger.NewLogger(logLevel)

			kind, err := tools.ParseKind(tool)
			if err != nil {
				return err
			}

			cfg := config.LoadConfig()
			catalog, err := tools.LoadCatalog(cfg.ToolCatalogPath)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.ResultsDir, 0755); err != nil {
				return err
			}

			notifier, err := notification.NewClient(cfg.DiscordToken, cfg.DiscordChannelID)
			if err != nil {
				appLogger.Error("Failed to initialize Discord client:", logger.Fields{"error": err})
			} else if notifier != nil {
				defer notifier.Close()
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigChan
				appLogger.Info("Shutting down")
				cancel()
			}()

			toolService := services.NewToolService(catalog, runner.NewExecRunner(), notifier)
			detail, normalized, err := toolService.RunTool(ctx, kind, target)
			if err != nil {
				return fmt.Errorf("scan of %s failed: %w", normalized, err)
			}

			out, err := json.MarshalIndent(detail, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	scanCmd.Flags().StringVarP(&tool, "tool", "t", "", "Tool to run (required)")
	scanCmd.Flags().StringVarP(&target, "target", "d", "", "Target host or URL (required)")
	scanCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	scanCmd.MarkFlagRequired("tool")
	scanCmd.MarkFlagRequired("target")

	return scanCmd
}
