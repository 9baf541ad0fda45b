// Package content holds the sample data served to the dashboard tabs. None
// of it is computed; a learning engine would eventually replace these
// fixtures.
package content

// OverviewStats summarises a user's learning activity for the overview tab.
type OverviewStats struct {
	LessonsCompleted int
	QuizzesTaken     int
	AverageScore     int // percent
	HoursSpent       int
}

// Activity is a single entry in the recent-activity feed.
type Activity struct {
	Type   string // "quiz" or "lesson"
	Name   string
	Result string
	Date   string
}

// LearningPath is a course of lessons with tracked completion.
type LearningPath struct {
	ID               int
	Title            string
	Description      string
	Category         string
	TotalLessons     int
	CompletedLessons int
	EstimatedHours   int
	Difficulty       string
	Popular          bool
}

// Category filters the learning-path list.
type Category struct {
	ID   string
	Name string
}

// Quiz is an entry in the quiz catalogue.
type Quiz struct {
	ID             string
	Title          string
	TotalQuestions int
	TimeMinutes    int
	Difficulty     string
}

// SampleStats returns the overview-tab stats fixture.
func SampleStats() OverviewStats {
	return OverviewStats{
		LessonsCompleted: 26,
		QuizzesTaken:     7,
		AverageScore:     82,
		HoursSpent:       14,
	}
}

// SampleActivity returns the recent-activity fixture.
func SampleActivity() []Activity {
	return []Activity{
		{Type: "quiz", Name: "JavaScript Basics", Result: "Completed (85%)", Date: "2 days ago"},
		{Type: "lesson", Name: "React Components", Result: "Completed", Date: "4 days ago"},
		{Type: "lesson", Name: "CSS Grid Layout", Result: "In Progress (75%)", Date: "1 week ago"},
	}
}

// Categories returns the learning-path filter categories.
func Categories() []Category {
	return []Category{
		{ID: "all", Name: "All Paths"},
		{ID: "frontend", Name: "Frontend"},
		{ID: "backend", Name: "Backend"},
		{ID: "design", Name: "UI/UX Design"},
		{ID: "devops", Name: "DevOps"},
	}
}

// SampleLearningPaths returns the learning-path catalogue fixture.
func SampleLearningPaths() []LearningPath {
	return []LearningPath{
		{
			ID:               1,
			Title:            "JavaScript Fundamentals",
			Description:      "Master core JavaScript concepts and modern ES6+ features",
			Category:         "frontend",
			TotalLessons:     24,
			CompletedLessons: 18,
			EstimatedHours:   12,
			Difficulty:       "Beginner",
			Popular:          true,
		},
		{
			ID:               2,
			Title:            "React Framework Mastery",
			Description:      "Build powerful single-page applications with React",
			Category:         "frontend",
			TotalLessons:     32,
			CompletedLessons: 8,
			EstimatedHours:   18,
			Difficulty:       "Intermediate",
			Popular:          true,
		},
		{
			ID:               3,
			Title:            "Node.js Backend Development",
			Description:      "Create scalable backend services with Node.js",
			Category:         "backend",
			TotalLessons:     28,
			CompletedLessons: 0,
			EstimatedHours:   16,
			Difficulty:       "Intermediate",
		},
		{
			ID:               4,
			Title:            "CSS Layouts & Animations",
			Description:      "Master CSS Grid, Flexbox and advanced animations",
			Category:         "frontend",
			TotalLessons:     20,
			CompletedLessons: 15,
			EstimatedHours:   10,
			Difficulty:       "Beginner",
		},
	}
}

// PathsForCategory filters the catalogue by category ID; "all" returns
// everything.
func PathsForCategory(categoryID string) []LearningPath {
	all := SampleLearningPaths()
	if categoryID == "" || categoryID == "all" {
		return all
	}
	var filtered []LearningPath
	for _, p := range all {
		if p.Category == categoryID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SampleQuizzes returns the quiz catalogue fixture.
func SampleQuizzes() []Quiz {
	return []Quiz{
		{ID: "quiz-js-fundamentals", Title: "JavaScript Fundamentals Quiz", TotalQuestions: 12, TimeMinutes: 15, Difficulty: "Beginner"},
		{ID: "quiz-react-components", Title: "React Components & Props", TotalQuestions: 10, TimeMinutes: 12, Difficulty: "Intermediate"},
		{ID: "quiz-css-grid", Title: "CSS Grid & Flexbox", TotalQuestions: 15, TimeMinutes: 20, Difficulty: "Intermediate"},
		{ID: "quiz-frontend-perf", Title: "Frontend Performance Optimization", TotalQuestions: 8, TimeMinutes: 10, Difficulty: "Advanced"},
	}
}
