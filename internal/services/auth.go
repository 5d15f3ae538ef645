package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"ticket-tracker/internal/models"
	"ticket-tracker/internal/utils"
)

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token string `json:"token"`
}

// tokenClaims carries the authenticated user inside the JWT, so request
// handling never needs a user lookup to establish identity
type tokenClaims struct {
	UserID    int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Type      string `json:"type"`
	CreatedAt int64  `json:"user_created_at"`
	jwt.StandardClaims
}

// AuthService handles registration, login, and token validation
type AuthService struct {
	users     UserStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new authentication service
func NewAuthService(users UserStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Register creates a new user with a hashed password
func (s *AuthService) Register(req *models.UserCreateRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, models.NewStorageError("failed to hash password", err)
	}

	return s.users.Create(req, passwordHash)
}

// Login verifies credentials and issues a signed bearer token. Unknown
// email and wrong password report the same message.
func (s *AuthService) Login(req *models.LoginRequest) (*AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if appErr, ok := models.AsAppError(err); ok && appErr.Type == models.ErrorTypeNotFound {
			return nil, models.NewValidationError("invalid email or password")
		}
		return nil, err
	}

	match, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, models.NewStorageError("failed to verify password", err)
	}
	if !match {
		return nil, models.NewValidationError("invalid email or password")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, models.NewStorageError("failed to sign token", err)
	}

	return &AuthResponse{Token: token}, nil
}

// ValidateToken parses and validates a bearer token and reconstructs
// the user it was issued to
func (s *AuthService) ValidateToken(tokenString string) (*models.User, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.NewUnauthenticatedError("invalid or expired token")
	}

	return &models.User{
		ID:        claims.UserID,
		Name:      claims.Name,
		Email:     claims.Email,
		Type:      models.UserType(claims.Type),
		CreatedAt: time.Unix(claims.CreatedAt, 0),
	}, nil
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(id int) (*models.User, error) {
	return s.users.GetByID(id)
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Type:      string(user.Type),
		CreatedAt: user.CreatedAt.Unix(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.tokenTTL).Unix(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
