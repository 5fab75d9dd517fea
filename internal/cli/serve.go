package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"invoiceqc/internal/config"
	"invoiceqc/internal/extractor"
	"invoiceqc/internal/handler"
	"invoiceqc/internal/loader"
	"invoiceqc/internal/logger"
	"invoiceqc/internal/router"
	"invoiceqc/internal/service"
	"invoiceqc/internal/validator"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP validation service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		svc := service.NewQCService(
			loader.NewDirLoader(cfg.Loader.Extensions...),
			extractor.NewEngine(),
			validator.NewDefaultEngine(),
		)
		r := router.Setup(cfg,
			handler.NewQCHandler(svc, cfg.Upload),
			handler.NewConsoleHandler(),
			handler.NewHealthHandler(),
		)

		srvLog := logger.WithComponent("server")
		srvLog.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := r.Run(cfg.Server.Port); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
