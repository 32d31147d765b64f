package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Defaults match the deployment this backend was written for: the frontend
// expects it on port 5000, and summaries come from an Ollama instance
// serving deepseek-r1.
const (
	DefaultPort        = 5000
	DefaultOllamaURL   = "http://localhost:11434/api/generate"
	DefaultOllamaModel = "deepseek-r1:32b"
)

type OllamaConfig struct {
	URL   string `json:"url"`
	Model string `json:"model"`
}

type Config struct {
	Server struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	} `json:"server"`
	Ollama OllamaConfig `json:"ollama"`
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig reads the config file from disk (singleton). The service runs
// fine without one: a missing file means all defaults apply.
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		var c Config
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := json.Unmarshal(raw, &c); err != nil {
				cfgErr = fmt.Errorf("invalid config format: %w", err)
				return
			}
		} else if !os.IsNotExist(err) {
			cfgErr = fmt.Errorf("failed to read config file: %w", err)
			return
		}
		applyDefaults(&c)
		cfg = &c
	})
	return cfg, cfgErr
}

func applyDefaults(c *Config) {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Ollama.URL == "" {
		c.Ollama.URL = DefaultOllamaURL
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = DefaultOllamaModel
	}
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
