package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/dayplan/internal/logging"
	"github.com/sandeepkv93/dayplan/internal/model"
	"github.com/sandeepkv93/dayplan/internal/nav"
	"github.com/sandeepkv93/dayplan/internal/onboarding"
	"github.com/sandeepkv93/dayplan/internal/plan"
	"github.com/sandeepkv93/dayplan/internal/theme"
	"github.com/sandeepkv93/dayplan/internal/todo"
	"github.com/sirupsen/logrus"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	DailyPlan string
	Todo      string
	Profile   string
	Palette   string
	Help      string
	Quit      string
}

type Profile struct {
	Name  string
	Email string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Deps are the collaborators built outside the model. Zero values get
// working defaults.
type Deps struct {
	Theme  theme.Theme
	Logger *logrus.Entry
	IDs    model.IDSource
	Now    func() time.Time
}

type Model struct {
	Nav         *nav.Shell
	Plan        *plan.Planner
	Todo        *todo.List
	Onboarding  *onboarding.Flow
	Theme       theme.Theme
	Profile     Profile
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error
	PlanCursor  int
	TodoCursor  int

	planForm planForm
	todoForm todoForm
	picker   timePicker
	log      *logrus.Entry

	commandInput    textinput.Model
	helpModel       help.Model
	dayProgress     progress.Model
	profileViewport viewport.Model
}

type SwitchTabMsg struct {
	Tab nav.Tab
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// OnboardingCompleteMsg is emitted once the flow is advanced past its last
// step or skipped.
type OnboardingCompleteMsg struct{}

// TimePickedMsg is the single result of a time picker session.
type TimePickedMsg struct {
	Value    string
	Selected bool
}

type AddTaskMsg struct {
	Title       string
	Description string
	Time        string
	Priority    model.Priority
}

type AddTodoMsg struct {
	Title    string
	DueDate  string
	Priority model.Priority
}

func NewModel(cfg RuntimeConfig, deps Deps) Model {
	th := deps.Theme
	if th.Width == 0 {
		th = theme.New(theme.DefaultPalette(), cfg.MarkdownStyle, cfg.PanelWidth)
	}
	log := deps.Logger
	if log == nil {
		log = logging.Discard()
	}
	ids := deps.IDs
	if ids == nil {
		ids = model.UUIDSource{}
	}

	m := Model{
		Nav:        nav.New(cfg.ShowOnboarding),
		Plan:       plan.New(plan.Options{IDs: ids, Now: deps.Now, Seed: cfg.SeedDemo}),
		Todo:       todo.New(todo.Options{IDs: ids, Seed: cfg.SeedDemo}),
		Onboarding: onboarding.New(onboarding.DefaultSteps()),
		Theme:      th,
		Profile:    Profile{Name: cfg.ProfileName, Email: cfg.ProfileEmail},
		Keys: GlobalKeyMap{
			DailyPlan: "1",
			Todo:      "2",
			Profile:   "3",
			Palette:   "/",
			Help:      "?",
			Quit:      "q",
		},
		log: log,
	}
	m.initBubbleComponents()
	m.log.WithFields(logrus.Fields{
		"route": m.Nav.Route(),
		"seed":  cfg.SeedDemo,
	}).Info("session started")
	return m
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.planForm = newPlanForm()
	m.todoForm = newTodoForm()

	m.helpModel = help.New()

	m.dayProgress = progress.New(progress.WithDefaultGradient())
	m.dayProgress.Width = m.Theme.Width - 8

	m.profileViewport = viewport.New(m.Theme.Width-4, 14)
	m.profileViewport.SetContent(m.renderProfileSections())
}
