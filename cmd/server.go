package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shayulman/radiodesk/internal/assistant"
	"github.com/shayulman/radiodesk/internal/calendar"
	"github.com/shayulman/radiodesk/internal/campaigns"
	"github.com/shayulman/radiodesk/internal/config"
	"github.com/shayulman/radiodesk/internal/content"
	"github.com/shayulman/radiodesk/internal/flows"
	"github.com/shayulman/radiodesk/internal/progress"
	"github.com/shayulman/radiodesk/internal/server"
	"github.com/shayulman/radiodesk/internal/settings"
	"github.com/shayulman/radiodesk/internal/vectordb"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the station dashboard server",
	Long:  `Starts the radiodesk server with the REST API for flows, content, campaigns, calendar, settings and the studio assistant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serverPort != 0 {
			cfg.Port = serverPort
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		srv := server.New(server.Config{
			Port:           cfg.Port,
			AllowedOrigins: cfg.AllowedOrigins,
		}, database)
		r := srv.Router()

		// Core feature stores and routes.
		flowStore := flows.NewStore(database)
		flows.RegisterRoutes(r, flowStore)

		contentStore := content.NewStore(database)
		content.RegisterRoutes(r, contentStore)

		campaignStore := campaigns.NewStore(database)
		campaigns.RegisterRoutes(r, campaignStore)

		calendarStore := calendar.NewStore(database)
		calendar.RegisterRoutes(r, calendarStore)

		settingsStore, err := settings.NewStore(cmd.Context(), database)
		if err != nil {
			return fmt.Errorf("initializing settings: %w", err)
		}
		settings.RegisterRoutes(r, settingsStore)

		// Studio assistant is optional; the station runs fine without it.
		chatStore := assistant.NewStore(database)
		engine := buildAssistant(cfg, chatStore, flowStore, contentStore, campaignStore)
		assistant.RegisterRoutes(r, engine)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "radiodesk v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Data: %s\n", cfg.DataDir)
		if engine.Ready() {
			fmt.Fprintf(os.Stderr, "  Assistant: %s\n", cfg.Assistant.Provider)
		} else {
			fmt.Fprintln(os.Stderr, "  Assistant: disabled")
		}

		return srv.Start()
	},
}

// buildAssistant wires the assistant engine from config. Failures disable
// the assistant with a warning instead of blocking the server.
func buildAssistant(cfg *config.Config, chatStore *assistant.Store, flowStore *flows.Store, contentStore *content.Store, campaignStore *campaigns.Store) *assistant.Engine {
	if !cfg.AssistantEnabled() {
		return assistant.NewEngine(chatStore, nil, nil, "")
	}

	provider, err := createLLMProviderFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: assistant disabled: %v\n", err)
		return assistant.NewEngine(chatStore, nil, nil, "")
	}

	var vectors vectordb.VectorStore
	embedder, err := createEmbedderFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: assistant running without retrieval: %v\n", err)
	} else {
		store, err := vectordb.NewChromemStore(embedder)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: assistant running without retrieval: %v\n", err)
		} else {
			vectorDir := filepath.Join(cfg.DataDir, "vectordb")
			if err := store.Load(context.Background(), vectorDir); err != nil {
				fmt.Fprintf(os.Stderr, "Note: no vector index at %s; building one\n", vectorDir)
				ix := assistant.NewIndexer(flowStore, contentStore, campaignStore, store)
				if n, err := ix.Reindex(context.Background(), progress.NewReporter("Indexing station records")); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: indexing failed: %v\n", err)
				} else if n > 0 {
					if err := store.Persist(context.Background(), vectorDir); err != nil {
						fmt.Fprintf(os.Stderr, "Warning: persisting index failed: %v\n", err)
					}
				}
			}
			vectors = store
		}
	}

	return assistant.NewEngine(chatStore, provider, vectors, cfg.Assistant.Model)
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "Override the configured port")
	rootCmd.AddCommand(serverCmd)
}
