package main

import (
	"log"
	"os"

	"github.com/phambaophuc/imgresize/internal/config"
	"github.com/phambaophuc/imgresize/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	if !cfg.EnvFileLoaded {
		zl.Debug("No .env file found")
	}

	code := run(os.Args[1:], cfg, zl, os.Stdin, os.Stdout, os.Stderr)
	_ = zl.Sync()
	os.Exit(code)
}
