package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Supported LLM provider names for LLMConfig.Provider.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

const (
	defaultPort            = 8080
	defaultTemperature     = 1.5
	defaultMaxOutputTokens = 1024
	defaultGeminiModel     = "gemini-2.0-flash"
	defaultOpenAIModel     = "gpt-4o-mini"
	defaultAnthropicModel  = "claude-haiku-4-5"
)

type ServerConfig struct {
	Port int `yaml:"port"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allowOrigins"`
}

// LLMConfig selects the model backend. API keys are never read from yaml;
// they come from the environment (GEMINI_API_KEY or GOOGLE_API_KEY,
// OPENAI_API_KEY, ANTHROPIC_API_KEY).
type LLMConfig struct {
	Provider        string  `yaml:"provider"`
	Model           string  `yaml:"model"`
	Temperature     float32 `yaml:"temperature"`
	MaxOutputTokens int32   `yaml:"maxOutputTokens"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	CORS    CORSConfig    `yaml:"cors"`
	LLM     LLMConfig     `yaml:"llm"`
	Logging LoggingConfig `yaml:"logging"`

	GeminiAPIKey    string `yaml:"-"`
	OpenAIAPIKey    string `yaml:"-"`
	AnthropicAPIKey string `yaml:"-"`
}

// LoadConfig reads the configuration file, fills in defaults, and overlays
// credentials from the environment. A missing file is not an error; the
// server then runs on defaults alone.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg.applyDefaults()
	cfg.loadCredentials()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if len(c.CORS.AllowOrigins) == 0 {
		c.CORS.AllowOrigins = []string{"http://localhost:3000"}
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderGemini
	}
	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case ProviderOpenAI:
			c.LLM.Model = defaultOpenAIModel
		case ProviderAnthropic:
			c.LLM.Model = defaultAnthropicModel
		default:
			c.LLM.Model = defaultGeminiModel
		}
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = defaultTemperature
	}
	if c.LLM.MaxOutputTokens == 0 {
		c.LLM.MaxOutputTokens = defaultMaxOutputTokens
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func (c *Config) loadCredentials() {
	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GOOGLE_API_KEY")
	}
	c.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	c.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")
}
