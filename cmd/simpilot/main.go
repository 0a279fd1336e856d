package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/config"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/logging"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/server"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/util"
)

var (
	port      = flag.Int("port", 0, "listen port (overrides config.toml)")
	devMode   = flag.Bool("dev", false, "development mode")
	dataDir   = flag.String("dataDir", "", "data directory (overrides config.toml)")
	noBrowser = flag.Bool("no-browser", false, "do not open the browser on startup")
)

func main() {
	flag.Parse()

	// .env is optional; env vars also come in through the shell.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	log, err := logging.New(cfg.Server.DevMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	srv, err := server.NewServer(cfg, log)
	if err != nil {
		log.Fatal("startup failed", zap.Error(err))
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		log.Info("simpilot listening", zap.String("addr", addr), zap.Bool("dev", cfg.Server.DevMode))
		if err := srv.Run(addr); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	if !cfg.Server.DevMode && !*noBrowser {
		if err := util.OpenBrowserWithFallback(url); err != nil {
			log.Info("open the dashboard manually", zap.String("url", url))
		}
	} else {
		log.Info("dashboard", zap.String("url", url))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
}
