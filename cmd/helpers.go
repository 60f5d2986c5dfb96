package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shayulman/radiodesk/internal/config"
	"github.com/shayulman/radiodesk/internal/db"
	"github.com/shayulman/radiodesk/internal/embeddings"
	"github.com/shayulman/radiodesk/internal/llm"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	if verbose {
		fmt.Fprintf(os.Stderr, "Using config %s\n", cfgFile)
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `radiodesk init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openDatabase opens the station database under the configured data dir.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	return db.Open(filepath.Join(cfg.DataDir, "radiodesk.db"))
}

// createEmbedderFromConfig creates an embeddings.Embedder based on config.
// The embedding provider falls back to the chat provider when unset; model
// defaults are handled by the embeddings factory.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	provider := cfg.Assistant.EmbeddingProvider
	if provider == "" || provider == config.ProviderNone {
		provider = cfg.Assistant.Provider
	}
	if provider == "" || provider == config.ProviderNone {
		return nil, fmt.Errorf("no embedding provider configured")
	}
	return embeddings.NewEmbedder(string(provider), cfg.Assistant.EmbeddingModel)
}

// createLLMProviderFromConfig creates an LLM provider based on config settings.
func createLLMProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	provider, err := llm.NewProvider(string(cfg.Assistant.Provider), cfg.Assistant.Model)
	if err != nil {
		return nil, err
	}
	if rpm := cfg.Assistant.RateLimitRPM; rpm > 0 {
		provider = llm.NewRateLimitedProvider(provider, rpm)
	}
	return provider, nil
}
