package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/dayplan/internal/views"
)

func completeOnboardingCmd() tea.Msg { return OnboardingCompleteMsg{} }

func (m Model) handleOnboardingKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "l", "right", "n":
		if m.Onboarding.Advance() {
			return m, completeOnboardingCmd
		}
		m.log.WithField("step", m.Onboarding.Index()).Debug("onboarding advanced")
	case "s":
		if m.Onboarding.Skip() {
			m.log.WithField("step", m.Onboarding.Index()).Debug("onboarding skipped")
			return m, completeOnboardingCmd
		}
	}
	return m, nil
}

func (m Model) renderOnboardingPanel() string {
	step := m.Onboarding.Current()
	return views.RenderOnboardingPanel(m.Theme, views.OnboardingPanelData{
		Index:    m.Onboarding.Index(),
		Total:    m.Onboarding.Len(),
		Icon:     step.Icon,
		Title:    step.Title,
		BodyView: views.RenderMarkdown(step.Description, m.Theme.MarkdownStyle),
		IsLast:   m.Onboarding.IsLast(),
	})
}
