package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/dtolley1/go-tabview/pkg/server"
)

func main() {
	// Command line flags; anything left unset falls back to the config file,
	// GOTABVIEW_* env vars and built-in defaults.
	var (
		configPath = flag.String("config", "", "Path to config file (yaml/toml)")
		port       = flag.String("port", "", "Server port")
		pageSize   = flag.Int("page-size", 0, "Default page size for new views")
		datasetArg = flag.String("dataset", "", "Dataset file (.gtvw or .json) to preload as a view")
		showHelp   = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\ngo-tabview serves searchable, filterable, sortable, paginated views over record sets.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # Start with defaults\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -port 9090 -page-size 50         # Custom port and page size\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -dataset orders.gtvw             # Preload a dataset as a view\n", os.Args[0])
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	cfg, err := server.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags win over config file and env
	if *port != "" {
		cfg.Port = *port
	}
	if *pageSize > 0 {
		cfg.DefaultPageSize = *pageSize
	}
	if *datasetArg != "" {
		cfg.DatasetPath = *datasetArg
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	srv := server.NewServer(cfg, logger)

	if cfg.DatasetPath != "" {
		id, err := srv.PreloadDataset(cfg.DatasetPath)
		if err != nil {
			logger.Fatal("failed to preload dataset", zap.String("path", cfg.DatasetPath), zap.Error(err))
		}
		logger.Info("preloaded view ready", zap.String("view_id", id))
	}

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Router(),
	}

	// Start server in a goroutine
	go func() {
		logger.Info("starting go-tabview server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = lvl
	return cfg.Build()
}
