package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "90s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

llm:
  api_key: "sk-test"
  base_url: "https://openrouter.ai/api/v1/chat/completions"
  model: "mistralai/mistral-nemo"
  temperature: 0.3
  max_tokens: 2000
  timeout: "45s"

log:
  level: "debug"
  format: "text"

cors:
  allowed_origins: "https://dutchhelper.ai"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.LLM.Model != "mistralai/mistral-nemo" {
		t.Errorf("LLM.Model = %q", cfg.LLM.Model)
	}
	if cfg.LLM.Timeout != 45*time.Second {
		t.Errorf("LLM.Timeout = %v", cfg.LLM.Timeout)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q", cfg.Log.Format)
	}
	if cfg.CORS.AllowedOrigins != "https://dutchhelper.ai" {
		t.Errorf("CORS.AllowedOrigins = %q", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_EnvOnlyDefaults(t *testing.T) {
	// Point CONFIG_PATH at a dir with no config.yaml so only ENV + defaults apply.
	t.Setenv("CONFIG_PATH", "")
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("Chdir back: %v", err)
		}
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.LLM.BaseURL != "https://openrouter.ai/api/v1/chat/completions" {
		t.Errorf("default LLM.BaseURL = %q", cfg.LLM.BaseURL)
	}
	if cfg.LLM.Temperature != 0.3 {
		t.Errorf("default LLM.Temperature = %v", cfg.LLM.Temperature)
	}
	if cfg.LLM.MaxTokens != 2000 {
		t.Errorf("default LLM.MaxTokens = %d", cfg.LLM.MaxTokens)
	}
	// Missing API key must not fail config loading.
	if cfg.LLM.APIKey != "" {
		t.Errorf("LLM.APIKey = %q, want empty", cfg.LLM.APIKey)
	}
	if !strings.Contains(cfg.CORS.AllowedOrigins, "http://localhost:5173") {
		t.Errorf("default CORS.AllowedOrigins = %q", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LLM_MODEL", "meta-llama/llama-3-8b-instruct")
	t.Setenv("SERVER_PORT", "9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LLM.Model != "meta-llama/llama-3-8b-instruct" {
		t.Errorf("LLM.Model = %q, env should win over yaml", cfg.LLM.Model)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, env should win over yaml", cfg.Server.Port)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for explicitly missing config file")
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	base := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8080, ShutdownTimeout: 10 * time.Second},
			LLM: LLMConfig{
				BaseURL:     "https://openrouter.ai/api/v1/chat/completions",
				Model:       "mistralai/mistral-nemo",
				Temperature: 0.3,
				MaxTokens:   2000,
				Timeout:     time.Minute,
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"relative base url", func(c *Config) { c.LLM.BaseURL = "not-a-url" }},
		{"empty model", func(c *Config) { c.LLM.Model = "" }},
		{"negative temperature", func(c *Config) { c.LLM.Temperature = -0.1 }},
		{"temperature above range", func(c *Config) { c.LLM.Temperature = 2.5 }},
		{"zero max tokens", func(c *Config) { c.LLM.MaxTokens = 0 }},
		{"zero timeout", func(c *Config) { c.LLM.Timeout = 0 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := base()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}

func TestValidate_MissingAPIKeyIsAllowed(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Server: ServerConfig{Port: 8080, ShutdownTimeout: 10 * time.Second},
		LLM: LLMConfig{
			BaseURL:     "https://openrouter.ai/api/v1/chat/completions",
			Model:       "mistralai/mistral-nemo",
			Temperature: 0.3,
			MaxTokens:   2000,
			Timeout:     time.Minute,
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, missing api key must not fail validation", err)
	}
}
