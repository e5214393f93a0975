// Package main provides the pyobo binary entry point: lexical grounding of
// free text against local namespace dumps, batch mapping prediction, and
// OBO emission.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/matentzn/pyobo/config"
	"github.com/matentzn/pyobo/metric"
)

const (
	Version = "0.1.0"
	appName = "pyobo"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metric.Metrics

	configPath  string
	logLevel    string
	metricsAddr string
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:     appName,
		Short:   "Ground free text against biomedical namespace dumps",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: layered pyobo.yaml lookup)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")

	cmd.AddCommand(
		groundCmd(a),
		predictCmd(a),
		oboCmd(a),
	)
	return cmd
}

// setup loads configuration, installs the logger, and optionally starts the
// metrics endpoint.
func (a *app) setup() error {
	var cfg *config.Config
	var err error
	if a.configPath != "" {
		cfg, err = config.LoadFromFile(a.configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	} else {
		cfg, err = config.NewLoader(nil).Load()
		if err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(a.logger)

	a.metrics = metric.NewMetrics()
	if a.metricsAddr != "" {
		registry := prometheus.NewRegistry()
		if err := a.metrics.Register(registry); err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			a.logger.Info("Serving metrics", slog.String("addr", a.metricsAddr))
			if err := http.ListenAndServe(a.metricsAddr, mux); err != nil {
				a.logger.Error("Metrics server stopped", slog.String("error", err.Error()))
			}
		}()
	}
	return nil
}
