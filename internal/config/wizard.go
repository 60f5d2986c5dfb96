package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(configPath string) (*Config, error) {
	fmt.Println("Welcome to radiodesk! Let's set up your station.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. HTTP port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory (database and index)",
		Default: cfg.DataDir,
	}
	if cfg.DataDir, err = dataPrompt.Run(); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 3. Media directory.
	mediaPrompt := promptui.Prompt{
		Label:   "Media directory (audio files to import)",
		Default: cfg.MediaDir,
	}
	if cfg.MediaDir, err = mediaPrompt.Run(); err != nil {
		return nil, fmt.Errorf("media dir: %w", err)
	}

	// 4. Assistant provider.
	providerPrompt := promptui.Select{
		Label: "Studio assistant LLM provider",
		Items: []string{"none", "openai", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Assistant.Provider = ProviderType(providerStr)

	if cfg.AssistantEnabled() {
		model, embeddingModel := DefaultModelsFor(cfg.Assistant.Provider)

		modelPrompt := promptui.Prompt{
			Label:   "Assistant model",
			Default: model,
		}
		if cfg.Assistant.Model, err = modelPrompt.Run(); err != nil {
			return nil, fmt.Errorf("model: %w", err)
		}

		cfg.Assistant.EmbeddingProvider = cfg.Assistant.Provider
		cfg.Assistant.EmbeddingModel = embeddingModel

		if envVar := APIKeyEnvVar(cfg.Assistant.Provider); envVar != "" && os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: set %s in your environment before starting the server.\n", envVar)
		}
	}

	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
