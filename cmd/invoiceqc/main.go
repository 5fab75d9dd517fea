package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"invoiceqc/internal/cli"
	"invoiceqc/internal/config"
	"invoiceqc/internal/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := logger.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}

	os.Exit(cli.Execute())
}
