package users

import "time"

// RoleType represents a user's access level
type RoleType string

const (
	RoleUser  RoleType = "user"
	RoleAdmin RoleType = "admin"
)

// DefaultRole is assigned to users created through OAuth sign-in.
const DefaultRole = RoleUser

type User struct {
	ID           string    `json:"id,omitempty"`            // Unique identifier for the user
	Email        string    `json:"email,omitempty"`         // User's email address - unique across all records
	Name         string    `json:"name,omitempty"`          // Display name
	ProfileImage string    `json:"profile_image,omitempty"` // Profile image URL, may be empty
	Role         RoleType  `json:"role,omitempty"`          // Access role, defaults to "user"

	// Learning state - sparse, populated as the user works through content
	LearningProgress map[string]float64 `json:"learning_progress,omitempty"` // topic key -> progress
	CompletedQuizzes []string           `json:"completed_quizzes,omitempty"` // opaque quiz IDs

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProgressFor returns the recorded progress for a topic, zero when untracked
func (u *User) ProgressFor(topic string) float64 {
	return u.LearningProgress[topic]
}

// HasCompletedQuiz checks whether a quiz ID is in the user's completed set
func (u *User) HasCompletedQuiz(quizID string) bool {
	for _, id := range u.CompletedQuizzes {
		if id == quizID {
			return true
		}
	}
	return false
}
