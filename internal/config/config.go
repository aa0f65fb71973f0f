package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	LLM    LLMConfig    `yaml:"llm"`
	Log    LogConfig    `yaml:"log"`
	CORS   CORSConfig   `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LLMConfig holds upstream chat-completion API settings.
//
// APIKey is deliberately not env-required: its absence must surface as a
// processing failure on the first analysis attempt, not at startup, so the
// service can boot (and serve /health) without a key.
type LLMConfig struct {
	APIKey      string        `yaml:"api_key"      env:"OPENROUTER_API_KEY"`
	BaseURL     string        `yaml:"base_url"     env:"LLM_BASE_URL"     env-default:"https://openrouter.ai/api/v1/chat/completions"`
	Model       string        `yaml:"model"        env:"LLM_MODEL"        env-default:"mistralai/mistral-nemo"`
	Temperature float64       `yaml:"temperature"  env:"LLM_TEMPERATURE"  env-default:"0.3"`
	MaxTokens   int           `yaml:"max_tokens"   env:"LLM_MAX_TOKENS"   env-default:"2000"`
	Timeout     time.Duration `yaml:"timeout"      env:"LLM_TIMEOUT"      env-default:"60s"`
	HTTPReferer string        `yaml:"http_referer" env:"LLM_HTTP_REFERER" env-default:"https://dutchhelper.ai"`
	AppTitle    string        `yaml:"app_title"    env:"LLM_APP_TITLE"    env-default:"DutchHelper"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings. Defaults allow the local dev frontend
// (Vite and its fallback port).
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:5173,http://localhost:3000"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
