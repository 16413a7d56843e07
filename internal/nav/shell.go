package nav

type Route string

const (
	RouteOnboarding Route = "Onboarding"
	RouteMainTabs   Route = "MainTabs"
)

type Tab string

const (
	TabDailyPlan Tab = "Daily Plan"
	TabTodo      Tab = "To Do"
	TabProfile   Tab = "Profile"
)

var Tabs = []Tab{TabDailyPlan, TabTodo, TabProfile}

func (t Tab) IsValid() bool {
	switch t {
	case TabDailyPlan, TabTodo, TabProfile:
		return true
	default:
		return false
	}
}

// Shell is the two-level navigation: a route stack at the root and a fixed
// tab switch inside MainTabs.
type Shell struct {
	stack []Route
	tab   Tab
}

func New(showOnboarding bool) *Shell {
	s := &Shell{tab: TabDailyPlan}
	if showOnboarding {
		s.stack = []Route{RouteOnboarding}
	} else {
		s.stack = []Route{RouteMainTabs}
	}
	return s
}

func (s *Shell) Route() Route { return s.stack[len(s.stack)-1] }

func (s *Shell) Tab() Tab { return s.tab }

// Depth is the number of routes back-navigation can walk through.
func (s *Shell) Depth() int { return len(s.stack) }

// CompleteOnboarding replaces the whole history with MainTabs.
func (s *Shell) CompleteOnboarding() {
	s.stack = []Route{RouteMainTabs}
}

// Back pops one route. The root route is never popped.
func (s *Shell) Back() bool {
	if len(s.stack) <= 1 {
		return false
	}
	s.stack = s.stack[:len(s.stack)-1]
	return true
}

func (s *Shell) SelectTab(t Tab) bool {
	if !t.IsValid() || s.Route() != RouteMainTabs {
		return false
	}
	s.tab = t
	return true
}

func (s *Shell) NextTab() Tab {
	return s.step(1)
}

func (s *Shell) PrevTab() Tab {
	return s.step(len(Tabs) - 1)
}

func (s *Shell) step(delta int) Tab {
	if s.Route() != RouteMainTabs {
		return s.tab
	}
	for i, t := range Tabs {
		if t == s.tab {
			s.tab = Tabs[(i+delta)%len(Tabs)]
			break
		}
	}
	return s.tab
}
