package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"stratcore/internal"
	"stratcore/internal/config"
	"stratcore/internal/container"
)

func main() {
	// Optional in production; local runs keep settings in .env.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	logger := internal.NewDefaultLogger()

	c, err := container.New(cfg, logger)
	if err != nil {
		log.Fatalf("container init failed: %v", err)
	}
	defer c.Close()

	errc := make(chan error, 2)
	go func() { errc <- c.API.Start() }()
	if c.Ops != nil {
		go func() { errc <- c.Ops.Start() }()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		if err != nil {
			logger.Error("server failed: %v", err)
		}
	case sig := <-stop:
		logger.Info("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.API.Shutdown(ctx); err != nil {
		logger.Warn("api shutdown: %v", err)
	}
	if c.Ops != nil {
		if err := c.Ops.Shutdown(ctx); err != nil {
			logger.Warn("ops shutdown: %v", err)
		}
	}
}
