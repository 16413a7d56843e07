// Package theme maps semantic color names to terminal colors. A Theme is
// built once at startup and handed to everything that renders.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/dayplan/internal/model"
)

type Palette struct {
	Primary            lipgloss.Color
	PrimaryLight       lipgloss.Color
	PrimaryDark        lipgloss.Color
	OnPrimary          lipgloss.Color
	PrimaryContainer   lipgloss.Color
	Secondary          lipgloss.Color
	SecondaryLight     lipgloss.Color
	OnSecondary        lipgloss.Color
	SecondaryContainer lipgloss.Color

	Background       lipgloss.Color
	OnBackground     lipgloss.Color
	Surface          lipgloss.Color
	OnSurface        lipgloss.Color
	SurfaceVariant   lipgloss.Color
	OnSurfaceVariant lipgloss.Color

	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextDisabled  lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	Outline        lipgloss.Color
	OutlineVariant lipgloss.Color
	Border         lipgloss.Color
	Gray           lipgloss.Color
	LightGray      lipgloss.Color
	DarkGray       lipgloss.Color
}

// DefaultPalette is the app's light color scheme.
func DefaultPalette() Palette {
	return Palette{
		Primary:            lipgloss.Color("#4A6CF7"),
		PrimaryLight:       lipgloss.Color("#7D9AFA"),
		PrimaryDark:        lipgloss.Color("#2B4BBA"),
		OnPrimary:          lipgloss.Color("#FFFFFF"),
		PrimaryContainer:   lipgloss.Color("#DEE2FF"),
		Secondary:          lipgloss.Color("#6C5CE7"),
		SecondaryLight:     lipgloss.Color("#A29BFE"),
		OnSecondary:        lipgloss.Color("#FFFFFF"),
		SecondaryContainer: lipgloss.Color("#E6DEFF"),

		Background:       lipgloss.Color("#F8FAFF"),
		OnBackground:     lipgloss.Color("#1B1B1F"),
		Surface:          lipgloss.Color("#FFFFFF"),
		OnSurface:        lipgloss.Color("#1B1B1F"),
		SurfaceVariant:   lipgloss.Color("#E1E2EC"),
		OnSurfaceVariant: lipgloss.Color("#45464F"),

		TextPrimary:   lipgloss.Color("#1B1B1F"),
		TextSecondary: lipgloss.Color("#45464F"),
		TextDisabled:  lipgloss.Color("#757680"),

		Success: lipgloss.Color("#00B894"),
		Warning: lipgloss.Color("#FDCB6E"),
		Error:   lipgloss.Color("#FF7675"),
		Info:    lipgloss.Color("#74B9FF"),

		Outline:        lipgloss.Color("#757680"),
		OutlineVariant: lipgloss.Color("#4A4E5C"),
		Border:         lipgloss.Color("#E9ECF2"),
		Gray:           lipgloss.Color("#A4A9B7"),
		LightGray:      lipgloss.Color("#F1F3F9"),
		DarkGray:       lipgloss.Color("#4A4E5C"),
	}
}

type Theme struct {
	Palette       Palette
	MarkdownStyle string
	Width         int
}

func New(p Palette, markdownStyle string, width int) Theme {
	if markdownStyle == "" {
		markdownStyle = "light"
	}
	if width <= 0 {
		width = 72
	}
	return Theme{Palette: p, MarkdownStyle: markdownStyle, Width: width}
}

func Default() Theme {
	return New(DefaultPalette(), "", 0)
}

// PriorityColor is the accent used for priority dots and card edges.
func (t Theme) PriorityColor(p model.Priority) lipgloss.Color {
	switch p {
	case model.PriorityHigh:
		return t.Palette.Error
	case model.PriorityMedium:
		return t.Palette.Primary
	case model.PriorityLow:
		return t.Palette.Secondary
	default:
		return t.Palette.OutlineVariant
	}
}

func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Palette.OnSurface)
}

func (t Theme) Accent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Palette.Primary)
}

func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Palette.OnSurfaceVariant)
}

func (t Theme) Done() lipgloss.Style {
	return lipgloss.NewStyle().Strikethrough(true).Foreground(t.Palette.TextDisabled)
}

func (t Theme) Danger() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Palette.Error)
}

func (t Theme) Success() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Palette.Success)
}

func (t Theme) Panel() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Palette.Outline).
		Padding(0, 1).
		Width(t.Width)
}

func (t Theme) Modal() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Palette.Primary).
		Padding(0, 1)
}

func (t Theme) ActiveTab() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Foreground(t.Palette.OnPrimary).
		Background(t.Palette.Primary)
}

func (t Theme) InactiveTab() lipgloss.Style {
	return lipgloss.NewStyle().Padding(0, 1).Foreground(t.Palette.OnSurfaceVariant)
}

func (t Theme) Priority(p model.Priority) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.PriorityColor(p))
}
