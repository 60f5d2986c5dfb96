package config

// DefaultIncludes are glob patterns matched against the media directory
// during imports.
var DefaultIncludes = []string{
	"**/*.mp3",
	"**/*.wav",
	"**/*.flac",
	"**/*.ogg",
	"**/*.m4a",
}

// providerModels maps each assistant provider to its default chat and
// embedding models.
var providerModels = map[ProviderType]struct {
	Model          string
	EmbeddingModel string
}{
	ProviderOpenAI: {Model: "gpt-4o-mini", EmbeddingModel: "text-embedding-3-small"},
	ProviderOllama: {Model: "llama3", EmbeddingModel: "nomic-embed-text"},
}

// DefaultConfig returns a Config with sensible defaults. The assistant is
// disabled until configured.
func DefaultConfig() *Config {
	return &Config{
		Port:           8090,
		DataDir:        "data",
		MediaDir:       "media",
		AllowedOrigins: []string{"*"},
		ImportIncludes: DefaultIncludes,
		Assistant: AssistantConfig{
			Provider:          ProviderNone,
			EmbeddingProvider: ProviderNone,
			RateLimitRPM:      30,
		},
	}
}

// DefaultModelsFor returns the default chat and embedding models for the
// given provider. Falls back to the OpenAI defaults for unknown providers.
func DefaultModelsFor(p ProviderType) (model, embeddingModel string) {
	if m, ok := providerModels[p]; ok {
		return m.Model, m.EmbeddingModel
	}
	m := providerModels[ProviderOpenAI]
	return m.Model, m.EmbeddingModel
}
