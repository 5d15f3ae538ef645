package repositories

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"ticket-tracker/internal/models"
)

// UserRepository handles user data operations
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. A duplicate email surfaces as a Conflict
// error via the unique constraint rather than a racy pre-check.
func (r *UserRepository) Create(req *models.UserCreateRequest, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, type, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, password_hash, type, created_at`

	user := &models.User{}
	err := r.db.QueryRow(query, req.Name, req.Email, passwordHash, req.Type, time.Now()).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Type,
		&user.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, models.NewConflictError("a user with this email already exists")
		}
		return nil, models.NewStorageError("failed to create user", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	return r.getOne("SELECT id, name, email, password_hash, type, created_at FROM users WHERE id = $1", id)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	return r.getOne("SELECT id, name, email, password_hash, type, created_at FROM users WHERE email = $1", email)
}

func (r *UserRepository) getOne(query string, arg interface{}) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Type,
		&user.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("user not found")
		}
		return nil, models.NewStorageError("failed to get user", err)
	}

	return user, nil
}

// GetByIDs retrieves users for a set of ids. Missing ids are silently
// omitted from the result.
func (r *UserRepository) GetByIDs(ids []int) ([]*models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT id, name, email, password_hash, type, created_at FROM users WHERE id = ANY($1)`

	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return nil, models.NewStorageError("failed to get users", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Type, &user.CreatedAt); err != nil {
			return nil, models.NewStorageError("failed to scan user", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("failed to read users", err)
	}

	return users, nil
}
