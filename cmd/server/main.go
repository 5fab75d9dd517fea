package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"invoiceqc/internal/config"
	"invoiceqc/internal/extractor"
	"invoiceqc/internal/handler"
	"invoiceqc/internal/loader"
	"invoiceqc/internal/logger"
	"invoiceqc/internal/router"
	"invoiceqc/internal/service"
	"invoiceqc/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	svc := service.NewQCService(
		loader.NewDirLoader(cfg.Loader.Extensions...),
		extractor.NewEngine(),
		validator.NewDefaultEngine(),
	)

	qcH := handler.NewQCHandler(svc, cfg.Upload)
	consoleH := handler.NewConsoleHandler()
	healthH := handler.NewHealthHandler()

	r := router.Setup(cfg, qcH, consoleH, healthH)

	srvLog := logger.WithComponent("server")
	srvLog.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
