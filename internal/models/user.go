package models

import (
	"regexp"
	"strings"
	"time"
)

// UserType represents the type of a user in the system
type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeAdmin    UserType = "admin"
)

// User represents a user in the system
type User struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Type         UserType  `json:"type" db:"type"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UserSummary is the lightweight user projection embedded in ticket
// responses (assignee expansion)
type UserSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary returns the lightweight projection of the user
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// IsAdmin reports whether the user has the admin type
func (u *User) IsAdmin() bool {
	return u.Type == UserTypeAdmin
}

// UserCreateRequest represents the data needed to register a new user
type UserCreateRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Type     UserType `json:"type"`
	Password string   `json:"password"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate validates user registration data
func (req *UserCreateRequest) Validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return NewValidationError("name is required")
	}
	if len(req.Name) > 255 {
		return NewValidationError("name must be at most 255 characters")
	}

	if err := validateEmail(req.Email); err != nil {
		return err
	}

	if req.Type == "" {
		req.Type = UserTypeCustomer
	}
	if req.Type != UserTypeCustomer && req.Type != UserTypeAdmin {
		return NewValidationError("type must be customer or admin")
	}

	if len(req.Password) < 8 {
		return NewValidationError("password must be at least 8 characters")
	}
	if len(req.Password) > 128 {
		return NewValidationError("password must be at most 128 characters")
	}

	return nil
}

// Validate validates login credentials
func (req *LoginRequest) Validate() error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if req.Password == "" {
		return NewValidationError("password is required")
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return NewValidationError("email is required")
	}
	if !emailRegex.MatchString(email) {
		return NewValidationError("email format is invalid")
	}
	return nil
}
