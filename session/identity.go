package session

import "github.com/axis-learning/axis-server/users"

// Profile is the identity payload returned by the OAuth provider after a
// successful sign-in.
type Profile struct {
	Email    string
	Name     string
	ImageURL string
}

// Identity is what a resolved session exposes to the rest of the application.
// Role is copied from the user record at token-issue time and is not
// re-validated per request.
type Identity struct {
	Email        string
	Name         string
	ProfileImage string
	Role         users.RoleType
}

// IsAdmin returns true if the session carries the admin role
func (i *Identity) IsAdmin() bool {
	return i.Role == users.RoleAdmin
}
