package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/dayplan/internal/theme"
)

type AppData struct {
	Header     string
	TabBar     string
	LeftPane   string
	RightPane  string
	StatusLine string
	StatusErr  bool
	Footer     string
}

func RenderApp(th theme.Theme, data AppData) string {
	body := th.Panel().Render(data.LeftPane)
	if strings.TrimSpace(data.RightPane) != "" {
		right := th.Modal().Render(data.RightPane)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", right)
	}

	lines := []string{th.Title().Render(data.Header)}
	if data.TabBar != "" {
		lines = append(lines, data.TabBar)
	}
	lines = append(lines, body)
	if data.StatusLine != "" {
		status := th.Success().Render(data.StatusLine)
		if data.StatusErr {
			status = th.Danger().Render(data.StatusLine)
		}
		lines = append(lines, status)
	}
	if data.Footer != "" {
		lines = append(lines, th.Muted().Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

type TabData struct {
	Label  string
	Key    string
	Active bool
}

func RenderTabBar(th theme.Theme, tabs []TabData) string {
	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		label := tab.Key + " " + tab.Label
		if tab.Active {
			parts = append(parts, th.ActiveTab().Render(label))
			continue
		}
		parts = append(parts, th.InactiveTab().Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderMarkdown falls back to the raw text when glamour cannot render.
func RenderMarkdown(md string, style string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if style == "" {
		style = "light"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
