package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/quillhub/backend/internal/models"
	"github.com/quillhub/backend/internal/store"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrUsernameExists     = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// SessionCookie is the cookie browser clients carry the session token in.
const SessionCookie = "qh_session"

// tokenLifetime is how long issued sessions stay valid.
const tokenLifetime = 7 * 24 * time.Hour

// Service handles signup, login and session tokens.
type Service struct {
	store     *store.Store
	jwtSecret []byte
}

// NewService creates an authentication service.
func NewService(st *store.Store, jwtSecret []byte) *Service {
	return &Service{store: st, jwtSecret: jwtSecret}
}

// AuthResponse is returned by Register and Login.
type AuthResponse struct {
	Token     string       `json:"token"`
	User      *models.User `json:"user"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Email       string `json:"email" form:"email" binding:"required,email"`
	Username    string `json:"username" form:"username" binding:"required,min=3,max=30"`
	Password    string `json:"password" form:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" form:"display_name"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Register creates a user with a bcrypt password hash and issues a session.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if _, err := s.store.Users.ByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if _, err := s.store.Users.ByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		DisplayName:  displayName,
		PasswordHash: string(hash),
	}
	if err := s.store.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueSession(user)
}

// Login verifies credentials and issues a session.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.store.Users.ByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(user)
}

// GenerateToken signs a JWT for the given user.
func (s *Service) GenerateToken(user *models.User, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		Issuer:    "quillhub",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// UserFromToken validates a session token and loads its user.
func (s *Service) UserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.store.Users.ByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) issueSession(user *models.User) (*AuthResponse, error) {
	expiresAt := time.Now().UTC().Add(tokenLifetime)
	token, err := s.GenerateToken(user, expiresAt)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: user, ExpiresAt: expiresAt}, nil
}
