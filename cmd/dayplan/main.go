package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sandeepkv93/dayplan/internal/logging"
	"github.com/sandeepkv93/dayplan/internal/theme"
	"github.com/sandeepkv93/dayplan/internal/update"
)

func main() {
	envErr := godotenv.Load()
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	log, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "dayplan failed: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	switch {
	case envErr == nil:
		log.Debug("loaded .env")
	case !errors.Is(envErr, fs.ErrNotExist):
		log.WithError(envErr).Warn("ignoring unreadable .env")
	}

	th := theme.New(theme.DefaultPalette(), cfg.MarkdownStyle, cfg.PanelWidth)
	program := tea.NewProgram(update.NewModel(cfg, update.Deps{Theme: th, Logger: log}), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.WithError(err).Error("program exited with error")
		closer.Close()
		fmt.Fprintf(os.Stderr, "dayplan failed: %v\n", err)
		os.Exit(1)
	}
}
