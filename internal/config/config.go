package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultBaseURL    = "https://student.bennetterp.camu.in"
	defaultMarkerFile = "/tmp/last_run_date.txt"
)

// Config is loaded once at startup and passed explicitly into the
// constructors; nothing reads the environment after Load returns.
type Config struct {
	SlackBotToken  string
	SlackChannelID string
	Email          string
	Password       string

	BaseURL       string
	MarkerFile    string
	TriggerHour   int
	TriggerMinute int
}

// Load reads the configuration from the environment. All missing required
// variables are reported together in the error.
func Load() (Config, error) {
	cfg := Config{
		SlackBotToken:  os.Getenv("SLACK_BOT_TOKEN"),
		SlackChannelID: os.Getenv("SLACK_CHANNEL_ID"),
		Email:          os.Getenv("USER_EMAIL"),
		Password:       os.Getenv("USER_PASSWORD"),
		BaseURL:        getenvDefault("ERP_BASE_URL", defaultBaseURL),
		MarkerFile:     getenvDefault("LAST_RUN_FILE", defaultMarkerFile),
		TriggerHour:    readIntEnv("REPORT_HOUR", 1),
		TriggerMinute:  readIntEnv("REPORT_MINUTE", 0),
	}

	var missing []string
	for _, v := range []struct{ name, value string }{
		{"SLACK_BOT_TOKEN", cfg.SlackBotToken},
		{"SLACK_CHANNEL_ID", cfg.SlackChannelID},
		{"USER_EMAIL", cfg.Email},
		{"USER_PASSWORD", cfg.Password},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables are not set: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func readIntEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
