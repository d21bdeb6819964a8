package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LinearAPIKey   string `yaml:"linear_api_key"`
	SlackBotToken  string `yaml:"slack_bot_token"`
	SlackChannelID string `yaml:"slack_channel_id"`

	IssueBaseURL       string `yaml:"issue_base_url"`
	ThreadPattern      string `yaml:"thread_pattern"`
	ThreadLookbackDays int    `yaml:"thread_lookback_days"`
	Schedule           string `yaml:"schedule"`

	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	LLMModel        string `yaml:"llm_model"`
}

func LoadConfig(path string) (Config, error) {
	var cfg Config

	godotenv.Load()

	// Load from config.yaml if it exists
	if path == "" {
		path = "config.yaml"
		if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
			path = envPath
		}
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		log.Printf("Loaded config from %s", path)
	}

	// Env vars override YAML values
	envOverride(&cfg.LinearAPIKey, "LINEAR_API_KEY")
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.SlackChannelID, "SLACK_CHANNEL_ID")
	envOverride(&cfg.IssueBaseURL, "ISSUE_BASE_URL")
	envOverride(&cfg.ThreadPattern, "THREAD_PATTERN")
	envOverride(&cfg.Schedule, "SCHEDULE")
	envOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverride(&cfg.LLMModel, "LLM_MODEL")
	if val := os.Getenv("THREAD_LOOKBACK_DAYS"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return Config{}, fmt.Errorf("invalid THREAD_LOOKBACK_DAYS '%s': %w", val, err)
		}
		cfg.ThreadLookbackDays = parsed
	}

	// Defaults
	if cfg.IssueBaseURL == "" {
		cfg.IssueBaseURL = "https://linear.app/team/issue/"
	}
	if !strings.HasSuffix(cfg.IssueBaseURL, "/") {
		cfg.IssueBaseURL += "/"
	}
	if cfg.ThreadPattern == "" {
		cfg.ThreadPattern = "weekly update"
	}
	if cfg.ThreadLookbackDays == 0 {
		cfg.ThreadLookbackDays = 7
	}
	if cfg.Schedule == "" {
		cfg.Schedule = "0 9 * * MON"
	}

	// Required secrets are checked as a set; the error never says which
	// member is missing.
	if cfg.LinearAPIKey == "" || cfg.SlackBotToken == "" || cfg.SlackChannelID == "" {
		return Config{}, fmt.Errorf("missing required configuration: linear_api_key, slack_bot_token and slack_channel_id must all be set (via config.yaml or env)")
	}
	if cfg.ThreadLookbackDays < 1 {
		return Config{}, fmt.Errorf("invalid thread_lookback_days '%d': must be >= 1", cfg.ThreadLookbackDays)
	}

	return cfg, nil
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}
