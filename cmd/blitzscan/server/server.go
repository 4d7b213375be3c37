package server

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"blitzscan/api/routes"
	"blitzscan/internal/config"
	"blitzscan/internal/database"
	"blitzscan/internal/notification"
	"blitzscan/pkg/tools"
)

func NewServerCommand() *cobra.Command {
	var listenAddr string

	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Start the BlitzScan API server",
		Long:  `Start the HTTP server exposing the scanner, scan history and report endpoints`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg := config.LoadConfig()
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}

			catalog, err := tools.LoadCatalog(cfg.ToolCatalogPath)
			if err != nil {
				return err
			}

			// tools that write to disk expect the results dir to exist
			if err := os.MkdirAll(cfg.ResultsDir, 0755); err != nil {
				return err
			}

			database.InitDB(cfg)

			notifier, err := notification.NewClient(cfg.DiscordToken, cfg.DiscordChannelID)
			if err != nil {
				log.Warnf("Failed to initialize Discord client: %v", err)
			} else if notifier != nil {
				defer notifier.Close()
				log.Info("Discord notifications enabled")
			}

			router := routes.InitRouter(database.DB, cfg, catalog, notifier)
			return router.Run(cfg.ListenAddr)
		},
	}

	serverCmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "Address to listen on (overrides config)")

	return serverCmd
}
