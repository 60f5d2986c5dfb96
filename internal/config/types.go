package config

// ProviderType identifies an LLM or embedding provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
	ProviderNone   ProviderType = "none"
)

// Config is the top-level radiodesk configuration, corresponding to
// radiodesk.yml.
type Config struct {
	Port           int             `yaml:"port" koanf:"port"`
	DataDir        string          `yaml:"data_dir" koanf:"data_dir"`
	MediaDir       string          `yaml:"media_dir" koanf:"media_dir"`
	AllowedOrigins []string        `yaml:"allowed_origins" koanf:"allowed_origins"`
	ImportIncludes []string        `yaml:"import_includes" koanf:"import_includes"`
	Assistant      AssistantConfig `yaml:"assistant" koanf:"assistant"`
}

// AssistantConfig holds the LLM and embedding settings for the studio
// assistant. Provider "none" disables the assistant entirely.
type AssistantConfig struct {
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	EmbeddingProvider ProviderType `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string       `yaml:"embedding_model" koanf:"embedding_model"`
	RateLimitRPM      int          `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`
}
