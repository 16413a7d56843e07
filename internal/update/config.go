package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	ShowOnboarding bool
	SeedDemo       bool
	ProfileName    string
	ProfileEmail   string
	LogLevel       string
	LogFile        string
	MarkdownStyle  string
	PanelWidth     int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ShowOnboarding: true,
		SeedDemo:       true,
		ProfileName:    "John Doe",
		ProfileEmail:   "john.doe@example.com",
		LogLevel:       "info",
		LogFile:        "",
		MarkdownStyle:  "light",
		PanelWidth:     72,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvBool("DAYPLAN_SHOW_ONBOARDING"); ok {
		cfg.ShowOnboarding = v
	}
	if v, ok := getEnvBool("DAYPLAN_SEED_DEMO"); ok {
		cfg.SeedDemo = v
	}
	if v, ok := getEnvString("DAYPLAN_PROFILE_NAME"); ok {
		cfg.ProfileName = v
	}
	if v, ok := getEnvString("DAYPLAN_PROFILE_EMAIL"); ok {
		cfg.ProfileEmail = v
	}
	if v, ok := getEnvString("DAYPLAN_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvString("DAYPLAN_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("DAYPLAN_MARKDOWN_STYLE"); ok {
		cfg.MarkdownStyle = v
	}
	if v, ok := getEnvInt("DAYPLAN_PANEL_WIDTH"); ok && v >= 40 {
		cfg.PanelWidth = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
