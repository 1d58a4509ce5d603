package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9999
cors:
  allowOrigins:
    - "https://reviews.example.com"
llm:
  provider: "openai"
  model: "gpt-4o"
  temperature: 0.7
  maxOutputTokens: 512
logging:
  level: "debug"
  format: "json"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("unexpected port: %d", cfg.Server.Port)
	}
	if len(cfg.CORS.AllowOrigins) != 1 || cfg.CORS.AllowOrigins[0] != "https://reviews.example.com" {
		t.Errorf("unexpected cors origins: %v", cfg.CORS.AllowOrigins)
	}
	if cfg.LLM.Provider != ProviderOpenAI || cfg.LLM.Model != "gpt-4o" {
		t.Errorf("unexpected llm config: %+v", cfg.LLM)
	}
	if cfg.LLM.Temperature != 0.7 || cfg.LLM.MaxOutputTokens != 512 {
		t.Errorf("unexpected llm tuning: %+v", cfg.LLM)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("unexpected default port: %d", cfg.Server.Port)
	}
	if cfg.LLM.Provider != ProviderGemini {
		t.Errorf("unexpected default provider: %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "gemini-2.0-flash" {
		t.Errorf("unexpected default model: %s", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 1.5 {
		t.Errorf("unexpected default temperature: %f", cfg.LLM.Temperature)
	}
	if cfg.LLM.MaxOutputTokens != 1024 {
		t.Errorf("unexpected default max output tokens: %d", cfg.LLM.MaxOutputTokens)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("unexpected default log level: %s", cfg.Logging.Level)
	}
}

func TestLoadConfigInvalidYaml(t *testing.T) {
	path := writeConfigFile(t, "server: [not: valid")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for invalid yaml")
	}
}

func TestLoadConfigDefaultModelPerProvider(t *testing.T) {
	cases := []struct {
		provider string
		model    string
	}{
		{"gemini", "gemini-2.0-flash"},
		{"openai", "gpt-4o-mini"},
		{"anthropic", "claude-haiku-4-5"},
	}

	for _, tc := range cases {
		path := writeConfigFile(t, "llm:\n  provider: \""+tc.provider+"\"\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.LLM.Model != tc.model {
			t.Errorf("provider %s: expected default model %s, got %s", tc.provider, tc.model, cfg.LLM.Model)
		}
	}
}

func TestLoadConfigReadsCredentialsFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "oa-key")
	t.Setenv("ANTHROPIC_API_KEY", "an-key")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GeminiAPIKey != "gem-key" {
		t.Errorf("unexpected gemini key: %q", cfg.GeminiAPIKey)
	}
	if cfg.OpenAIAPIKey != "oa-key" || cfg.AnthropicAPIKey != "an-key" {
		t.Errorf("unexpected keys: openai=%q anthropic=%q", cfg.OpenAIAPIKey, cfg.AnthropicAPIKey)
	}
}

func TestLoadConfigGoogleAPIKeyFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GeminiAPIKey != "google-key" {
		t.Errorf("GOOGLE_API_KEY should back fill the gemini key, got %q", cfg.GeminiAPIKey)
	}
}
