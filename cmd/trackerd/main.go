package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/bsv-blockchain/trackerd/config"
	"github.com/bsv-blockchain/trackerd/internal/logger"
	"github.com/bsv-blockchain/trackerd/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("failed to run trackerd: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "trackerd",
		Short: "serves the transaction-announcement request scheduler",
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(configDir)
		},
	}
	cmd.PersistentFlags().StringVar(&configDir, "config", "", "directory to look for config")

	return cmd
}

func run(configDir string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	l, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	if hostname, err := os.Hostname(); err == nil {
		l = l.With(slog.String("host", hostname))
	}

	l.Info("starting trackerd")

	go func() {
		if cfg.ProfilerAddr == "" {
			return
		}
		l.Info("starting profiler", slog.String("addr", cfg.ProfilerAddr))
		if err := http.ListenAndServe(cfg.ProfilerAddr, nil); err != nil { //nolint:gosec
			l.Error("profiler server stopped", slog.String("err", err.Error()))
		}
	}()

	go func() {
		if cfg.PrometheusAddr == "" {
			return
		}
		l.Info("starting prometheus", slog.String("endpoint", cfg.PrometheusEndpoint))
		http.Handle(cfg.PrometheusEndpoint, promhttp.Handler())
		if err := http.ListenAndServe(cfg.PrometheusAddr, nil); err != nil { //nolint:gosec
			l.Error("prometheus server stopped", slog.String("err", err.Error()))
		}
	}()

	svc, err := service.New(l, cfg)
	if err != nil {
		return fmt.Errorf("failed to build scheduler service: %w", err)
	}

	if err := svc.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler service: %w", err)
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-signalChan
	l.Info("received shutdown signal", slog.String("reason", sig.String()))

	svc.Shutdown()

	return nil
}
