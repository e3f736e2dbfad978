package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/RoxanaAnamariaTurc/runner-app/internal/config"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/events"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/i18n"
	appLog "github.com/RoxanaAnamariaTurc/runner-app/internal/log"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/model"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/prefs"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/pricing"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/schedule"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/telemetry"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/web"
)

// flagConfig holds CLI flag values.
type flagConfig struct {
	configPath string
	listen     string
	once       bool
	debug      bool
}

func main() {
	appLog.Info("runnerapp starting", "version", "0.1.0")

	// Optional .env file for local development overrides.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		appLog.Warn("could not load .env file", "error", err.Error())
	}

	flags := parseFlags()
	if flags.debug {
		appLog.SetLevel(appLog.LevelDebug)
	}

	configPath := resolveConfigPath(flags.configPath, os.Getenv("RUNNERAPP_CONFIG"))
	conf, err := config.Load(configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", configPath)
		os.Exit(1)
	}

	// CLI --listen overrides config file listen if provided.
	if flags.listen != "" {
		conf.Listen = flags.listen
	}
	if v := os.Getenv("RUNNERAPP_LISTEN"); v != "" && flags.listen == "" {
		conf.Listen = v
	}

	appLog.Info("effective config",
		"listen", conf.Listen,
		"timezone", conf.Timezone,
		"default_language", conf.DefaultLanguage,
		"horizon_days", conf.HorizonDays,
		"data_dir", conf.DataDir,
		"once", flags.once,
	)

	loc, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		appLog.Error("failed to load timezone", err, "timezone", conf.Timezone)
		os.Exit(1)
	}

	// Root context with cancellation on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	bundle := i18n.NewBundle()
	catalog := events.NewCatalog(bundle)
	resolver := pricing.NewDefaultResolver(loc)
	expander := schedule.NewExpander(catalog, loc)
	store := prefs.NewStore(conf.DataDir)
	metrics := telemetry.NewCollector(nil)

	// -once: dump the upcoming schedule to stdout and exit.
	if flags.once {
		occs, err := expander.Upcoming(time.Now().In(loc), conf.HorizonDays)
		if err != nil {
			appLog.Error("schedule expansion failed", err)
			os.Exit(1)
		}
		writeScheduleText(os.Stdout, occs)
		return
	}

	// Periodic telemetry snapshot in the log for operators.
	c := cron.New()
	if conf.TelemetryCron != "" {
		if _, err := c.AddFunc(conf.TelemetryCron, func() {
			snap := metrics.Snapshot()
			appLog.Info("telemetry snapshot",
				"session", snap.SessionID,
				"samples", snap.Samples,
				"grade", snap.Grade,
				"bundle_total", snap.BundleTotal,
				"server_heap_mb", snap.ServerMemory.HeapAllocMB,
			)
		}); err != nil {
			appLog.Error("invalid telemetry cron expression", err, "cron", conf.TelemetryCron)
			os.Exit(1)
		}
		c.Start()
		defer c.Stop()
	}

	server := web.NewServer(conf, bundle, catalog, resolver, expander, store, metrics)
	httpServer := &http.Server{
		Addr:              conf.Listen,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLog.Info("starting HTTP server", "listen", "http://"+conf.Listen)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Error("HTTP server failed", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			appLog.Error("graceful shutdown failed", err)
		}
	}

	appLog.Info("runnerapp exiting")
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "", "Path to config file (default /etc/runnerapp/config.yaml)")
	flag.StringVar(&cfg.listen, "listen", "", "HTTP listen address (overrides config if set)")
	flag.BoolVar(&cfg.once, "once", false, "Print the upcoming schedule and exit")
	flag.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")

	flag.Parse()

	return cfg
}

// resolveConfigPath picks the config file path: CLI flag first, then the
// RUNNERAPP_CONFIG environment variable, then the packaged default.
func resolveConfigPath(flagValue, envValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue != "" {
		return envValue
	}
	return "/etc/runnerapp/config.yaml"
}

// writeScheduleText renders occurrences one per line for the -once dump.
func writeScheduleText(w io.Writer, occs []model.Occurrence) {
	if len(occs) == 0 {
		fmt.Fprintln(w, "no upcoming sessions")
		return
	}
	for _, occ := range occs {
		fmt.Fprintf(w, "%s  %s @ %s\n", occ.Start.Format("Mon 2006-01-02 15:04"), occ.Title, occ.Location)
	}
}
