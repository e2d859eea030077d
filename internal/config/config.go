package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "github.com/thomas-vilte/gitguard/internal/errors"
)

type Config struct {
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	Model        string `json:"model"`
	Language     string `json:"language"`
	UseEmoji     bool   `json:"use_emoji"`

	// AutoMode skips every interactive confirmation (hook-friendly).
	AutoMode bool `json:"auto_mode"`
	UseAI    bool `json:"use_ai"`

	MaxPromptTokens    int    `json:"max_prompt_tokens"`
	MaxPromptCost      string `json:"max_prompt_cost"`
	MaxClipboardTokens int    `json:"max_clipboard_tokens"`

	IncludeTests   bool     `json:"include_tests"`
	PrioritizeCore bool     `json:"prioritize_core"`
	IgnorePatterns []string `json:"ignore_patterns,omitempty"`

	PathFile string `json:"path_file"`
}

const (
	defaultLang               = "en"
	defaultUseEmoji           = true
	defaultModel              = "gemini-2.5-flash"
	defaultMaxPromptTokens    = 16000
	defaultMaxPromptCost      = "0.50"
	defaultMaxClipboardTokens = 50000
)

func defaultConfig(path string) *Config {
	return &Config{
		Model:              defaultModel,
		Language:           defaultLang,
		UseEmoji:           defaultUseEmoji,
		MaxPromptTokens:    defaultMaxPromptTokens,
		MaxPromptCost:      defaultMaxPromptCost,
		MaxClipboardTokens: defaultMaxClipboardTokens,
		IncludeTests:       false,
		PrioritizeCore:     true,
		PathFile:           path,
	}
}

// LoadConfig builds the effective configuration from the gitguard cascade:
// defaults, then ~/.gitguard/config.json, then <repoRoot>/.gitguard/config.json,
// then GITGUARD_* environment variables. repoRoot may be empty outside a
// repository. The global file is created on first run.
func LoadConfig(homeDir, repoRoot string) (*Config, error) {
	globalPath := filepath.Join(homeDir, ".gitguard", "config.json")
	cfg := defaultConfig(globalPath)

	if _, err := os.Stat(globalPath); os.IsNotExist(err) {
		if err := writeConfig(cfg, globalPath); err != nil {
			return nil, err
		}
	} else if err := mergeFile(cfg, globalPath); err != nil {
		return nil, err
	}

	if repoRoot != "" {
		localPath := filepath.Join(repoRoot, ".gitguard", "config.json")
		if _, err := os.Stat(localPath); err == nil {
			if err := mergeFile(cfg, localPath); err != nil {
				return nil, err
			}
		}
	}

	applyEnv(cfg)
	cfg.PathFile = globalPath

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("error decoding config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("GITGUARD_AUTO"); ok {
		cfg.AutoMode = isTruthy(v)
	}
	if v, ok := os.LookupEnv("GITGUARD_USE_AI"); ok {
		cfg.UseAI = isTruthy(v)
	}
	if v, ok := os.LookupEnv("GITGUARD_GEMINI_API_KEY"); ok && v != "" {
		cfg.GeminiAPIKey = v
	}
	if v, ok := os.LookupEnv("GITGUARD_MODEL"); ok && v != "" {
		cfg.Model = v
	}
	if v, ok := os.LookupEnv("GITGUARD_MAX_PROMPT_TOKENS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxPromptTokens = n
		}
	}
	if v, ok := os.LookupEnv("GITGUARD_MAX_CLIPBOARD_TOKENS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxClipboardTokens = n
		}
	}
	if v, ok := os.LookupEnv("GITGUARD_MAX_PROMPT_COST"); ok && v != "" {
		cfg.MaxPromptCost = v
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y", "si":
		return true
	}
	return false
}

// MaxPromptCostValue parses the decimal cost ceiling. Validation guarantees
// it parses, so callers after LoadConfig can ignore the error.
func (c *Config) MaxPromptCostValue() (float64, error) {
	return strconv.ParseFloat(strings.TrimPrefix(c.MaxPromptCost, "$"), 64)
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("refusing to save invalid configuration: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("configuration file path is not set")
	}

	return writeConfig(config, config.PathFile)
}

func writeConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding configuration: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error saving configuration: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.MaxPromptTokens <= 0 {
		return apperrors.ErrInvalidBudget.WithError(errors.New("max_prompt_tokens must be greater than 0"))
	}
	if config.MaxClipboardTokens < config.MaxPromptTokens {
		return apperrors.ErrInvalidBudget.WithError(errors.New("max_clipboard_tokens must not be below max_prompt_tokens"))
	}
	cost, err := config.MaxPromptCostValue()
	if err != nil {
		return apperrors.ErrInvalidBudget.WithError(fmt.Errorf("max_prompt_cost is not a decimal number: %w", err))
	}
	if cost < 0 {
		return apperrors.ErrInvalidBudget.WithError(errors.New("max_prompt_cost must not be negative"))
	}
	if config.Language == "" {
		return errors.New("language must not be empty")
	}
	return nil
}
