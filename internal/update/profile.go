package update

import (
	"strings"

	"github.com/sandeepkv93/dayplan/internal/views"
)

var profileSections = []struct {
	Title string
	Items []string
}{
	{Title: "Account", Items: []string{"Edit Profile", "Settings", "Help & Support"}},
	{Title: "More", Items: []string{"About", "Logout"}},
}

func (m Model) renderProfileSections() string {
	var b strings.Builder
	for _, s := range profileSections {
		b.WriteString("## " + s.Title + "\n\n")
		for _, item := range s.Items {
			b.WriteString("- " + item + "\n")
		}
		b.WriteString("\n")
	}
	return views.RenderMarkdown(b.String(), m.Theme.MarkdownStyle)
}

func (m Model) renderProfilePanel() string {
	return views.RenderProfilePanel(m.Theme, views.ProfilePanelData{
		Name:         m.Profile.Name,
		Email:        m.Profile.Email,
		SectionsView: m.profileViewport.View(),
	})
}
