package users

import "context"

// UserRepo is the persistence contract for user records.
// Create must enforce email uniqueness: a second create for an existing
// email returns errors.ErrEmailExists rather than producing a duplicate.
type UserRepo interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, offset, limit int) ([]*User, error)
}
