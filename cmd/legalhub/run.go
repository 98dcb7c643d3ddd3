package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"prados-hq/legalhub/pkg/api"
	"prados-hq/legalhub/pkg/assistant"
	"prados-hq/legalhub/pkg/config"
	"prados-hq/legalhub/pkg/history"
	"prados-hq/legalhub/pkg/knowledge"
	"prados-hq/legalhub/pkg/providers"
	"prados-hq/legalhub/pkg/providers/elevenlabs"
	"prados-hq/legalhub/pkg/providers/openai"
	"prados-hq/legalhub/pkg/server"
	"prados-hq/legalhub/pkg/telemetry/metrics"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Legal Hub API server",
	Long: `Start the Legal Hub API server with the specified configuration.

The server starts even when provider API keys are missing: affected
endpoints report 503 and /api/health shows what is configured.

Examples:
  # Start with default config
  legalhub run

  # Start with custom config
  legalhub run --config /etc/legalhub/config.yaml

  # Override listen address
  legalhub run --listen 0.0.0.0:8080

  # Validate config without starting the server
  legalhub run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(cfgFile); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.GetConfig()

	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	setupLogging(cfg)

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	fmt.Printf("Legal Hub v%s\n", Version)
	fmt.Printf("Loading configuration from: %s\n", cfgFile)
	fmt.Println("✓ Configuration loaded")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The collector is created before the adapters so they can record
	// call and token metrics through it.
	var collector *metrics.Collector
	var recorder providers.CallRecorder
	if !cfg.Telemetry.Metrics.Disabled {
		collector = metrics.NewCollector(cfg.Telemetry.Metrics.Namespace)
		recorder = collector
	}

	// Provider adapters. Missing keys are fine; the adapters report
	// unconfigured and the endpoints degrade.
	chat := openai.NewClient(openai.Config{
		ProviderConfig: providers.ProviderConfig{
			BaseURL:    cfg.Providers.OpenAI.BaseURL,
			APIKey:     cfg.Providers.OpenAI.APIKey,
			Timeout:    cfg.Providers.OpenAI.Timeout,
			MaxRetries: cfg.Providers.OpenAI.MaxRetries,
			Recorder:   recorder,
		},
		Model:       cfg.Providers.OpenAI.Model,
		Temperature: cfg.Providers.OpenAI.Temperature,
		MaxTokens:   cfg.Providers.OpenAI.MaxTokens,
	})
	defer chat.Close()

	speech := elevenlabs.NewClient(elevenlabs.Config{
		ProviderConfig: providers.ProviderConfig{
			BaseURL:    cfg.Providers.ElevenLabs.BaseURL,
			APIKey:     cfg.Providers.ElevenLabs.APIKey,
			Timeout:    cfg.Providers.ElevenLabs.Timeout,
			MaxRetries: cfg.Providers.ElevenLabs.MaxRetries,
			Recorder:   recorder,
		},
		VoiceID:  cfg.Providers.ElevenLabs.VoiceID,
		TTSModel: cfg.Providers.ElevenLabs.TTSModel,
		STTModel: cfg.Providers.ElevenLabs.STTModel,
		VoiceSettings: elevenlabs.VoiceSettings{
			Stability:       cfg.Providers.ElevenLabs.VoiceSettings.Stability,
			SimilarityBoost: cfg.Providers.ElevenLabs.VoiceSettings.SimilarityBoost,
			Style:           cfg.Providers.ElevenLabs.VoiceSettings.Style,
			SpeakerBoost:    cfg.Providers.ElevenLabs.VoiceSettings.SpeakerBoost,
		},
	})
	defer speech.Close()

	fmt.Printf("✓ Providers initialized (openai configured: %t, elevenlabs configured: %t)\n",
		chat.IsConfigured(), speech.IsConfigured())

	// Knowledge base with optional hot reload.
	kb, err := knowledge.NewBase(cfg.Knowledge.Path, nil)
	if err != nil {
		return fmt.Errorf("failed to load knowledge base: %w", err)
	}
	if cfg.Knowledge.Watch && cfg.Knowledge.Path != "" {
		watcher, err := knowledge.NewWatcher(kb, nil)
		if err != nil {
			slog.Warn("knowledge watcher unavailable", "error", err)
		} else {
			go func() {
				if err := watcher.Watch(ctx); err != nil {
					slog.Warn("knowledge watcher stopped", "error", err)
				}
			}()
			defer watcher.Stop()
		}
	}
	fmt.Println("✓ Knowledge base loaded")

	// History storage and retention.
	var store history.Storage
	if !cfg.History.Disabled {
		switch cfg.History.Backend {
		case "sqlite":
			store, err = history.NewSQLiteStorage(&history.SQLiteConfig{
				Path:         cfg.History.SQLite.Path,
				MaxOpenConns: cfg.History.SQLite.MaxOpenConns,
				MaxIdleConns: cfg.History.SQLite.MaxIdleConns,
				WALMode:      cfg.History.SQLite.WALMode,
				BusyTimeout:  cfg.History.SQLite.BusyTimeout,
			})
			if err != nil {
				return fmt.Errorf("failed to open history storage: %w", err)
			}
		case "memory":
			store = history.NewMemoryStorage()
		default:
			return fmt.Errorf("unsupported history backend: %s", cfg.History.Backend)
		}
		defer store.Close()

		pruner := history.NewPruner(store, history.RetentionConfig{
			Days:          cfg.History.Retention.Days,
			PruneSchedule: cfg.History.Retention.PruneSchedule,
		})
		scheduler := history.NewScheduler(pruner)
		if err := scheduler.Start(ctx); err != nil {
			slog.Warn("retention scheduler failed to start", "error", err)
		} else {
			defer scheduler.Stop()
		}

		fmt.Printf("✓ History storage initialized (%s)\n", cfg.History.Backend)
	}

	a := assistant.New(chat, speech, kb, store, assistant.Options{
		VoiceID:      cfg.Providers.ElevenLabs.VoiceID,
		AgentVoiceID: cfg.Providers.ElevenLabs.AgentVoiceID,
		AgentName:    cfg.Providers.ElevenLabs.AgentName,
	})

	handlers := api.NewHandlers(a, chat, speech, store, api.HealthInfo{
		CORSRaw:     os.Getenv("CORS_ORIGINS"),
		CORSOrigins: cfg.CORS.AllowedOrigins,
	})

	srv := server.New(cfg, handlers, collector)

	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Health endpoint: http://%s/api/health\n", cfg.Server.ListenAddress)
	if !cfg.Telemetry.Metrics.Disabled {
		fmt.Printf("✓ Metrics endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	if err := srv.Start(ctx); err != nil {
		return err
	}

	fmt.Println("✓ Server stopped")
	return nil
}

func setupLogging(cfg *config.Config) {
	var level slog.Level
	switch cfg.Telemetry.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Telemetry.Logging.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
