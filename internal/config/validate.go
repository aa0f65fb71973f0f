package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
//
// The upstream API key is intentionally not checked here: a missing key is
// reported on first use by the LLM client, per the error-handling policy.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0 (got %v)", c.Server.ShutdownTimeout)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	u, err := url.Parse(l.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q is not an absolute URL", l.BaseURL)
	}
	if l.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", l.Temperature)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	return nil
}
