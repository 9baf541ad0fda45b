// Package dashboard owns the authenticated shell: the active-tab state
// machine and its synchronization with the navigable URL fragment.
package dashboard

// Tab identifies one of the four dashboard views.
type Tab string

const (
	TabDashboard    Tab = "dashboard"
	TabLearningPath Tab = "learning-path"
	TabQuizzes      Tab = "quizzes"
	TabSettings     Tab = "settings"
)

// DefaultTab is the view shown when the URL fragment is absent or unknown.
const DefaultTab = TabDashboard

// Tabs lists every tab in sidebar order.
func Tabs() []Tab {
	return []Tab{TabDashboard, TabLearningPath, TabQuizzes, TabSettings}
}

// ParseTab maps a URL fragment to a tab. The second return value reports
// whether the fragment named a known tab.
func ParseTab(fragment string) (Tab, bool) {
	switch Tab(fragment) {
	case TabDashboard:
		return TabDashboard, true
	case TabLearningPath:
		return TabLearningPath, true
	case TabQuizzes:
		return TabQuizzes, true
	case TabSettings:
		return TabSettings, true
	default:
		return DefaultTab, false
	}
}

// Title returns the display name shown in the shell's top bar.
func (t Tab) Title() string {
	switch t {
	case TabLearningPath:
		return "Learning Paths"
	case TabQuizzes:
		return "Quizzes"
	case TabSettings:
		return "Settings"
	default:
		return "Dashboard"
	}
}

func (t Tab) String() string {
	return string(t)
}
