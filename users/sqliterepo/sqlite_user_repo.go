package sqliteuserrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/axis-learning/axis-server/database"
	apperrors "github.com/axis-learning/axis-server/internal/errors"
	"github.com/axis-learning/axis-server/users"
)

var _ users.UserRepo = (*SQLiteUserRepo)(nil)

// SQLiteUserRepo persists user records in SQLite. The learning-progress map
// and completed-quiz list are stored as JSON columns.
type SQLiteUserRepo struct {
	db *database.DB
}

func NewSQLiteUserRepo(db *database.DB) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: db}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, user *users.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = users.DefaultRole
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	// json.Marshal turns nil maps/slices into "null"; store empty containers instead
	progress := []byte("{}")
	if user.LearningProgress != nil {
		var err error
		if progress, err = json.Marshal(user.LearningProgress); err != nil {
			return fmt.Errorf("failed to marshal learning progress: %w", err)
		}
	}
	quizzes := []byte("[]")
	if user.CompletedQuizzes != nil {
		var err error
		if quizzes, err = json.Marshal(user.CompletedQuizzes); err != nil {
			return fmt.Errorf("failed to marshal completed quizzes: %w", err)
		}
	}

	query := `
		INSERT INTO users (id, email, name, profile_image, role, learning_progress, completed_quizzes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Conn.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.ProfileImage,
		string(user.Role),
		string(progress),
		string(quizzes),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		// UNIQUE constraint violation on idx_users_email: the record already
		// exists, most likely a concurrent first sign-in for the same email.
		if isUniqueViolation(err) {
			return apperrors.ErrEmailExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *SQLiteUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
}

func (r *SQLiteUserRepo) List(ctx context.Context, offset, limit int) ([]*users.User, error) {
	query := "SELECT " + userColumns + " FROM users ORDER BY id LIMIT ? OFFSET ?"

	rows, err := r.db.Conn.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var list []*users.User
	for rows.Next() {
		user, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return list, nil
}

const userColumns = "id, email, name, profile_image, role, learning_progress, completed_quizzes, created_at, updated_at"

func (r *SQLiteUserRepo) getOne(ctx context.Context, query string, arg any) (*users.User, error) {
	user, err := scanUser(r.db.Conn.QueryRowContext(ctx, query, arg).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func scanUser(scan func(dest ...any) error) (*users.User, error) {
	var (
		user     users.User
		role     string
		progress string
		quizzes  string
	)
	if err := scan(
		&user.ID, &user.Email, &user.Name, &user.ProfileImage,
		&role, &progress, &quizzes, &user.CreatedAt, &user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	user.Role = users.RoleType(role)
	if err := json.Unmarshal([]byte(progress), &user.LearningProgress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal learning progress: %w", err)
	}
	if err := json.Unmarshal([]byte(quizzes), &user.CompletedQuizzes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal completed quizzes: %w", err)
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
