package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"souq-tech/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost matches the original storefront's hashing cost.
	BcryptCost = 10

	SessionExpiration = 7 * 24 * time.Hour

	RoleAdmin = "admin"
	RoleUser  = "user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims are the session token claims.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService is the mock authentication mechanism: users live in an
// in-process list seeded with one admin account, sessions are HS256 tokens.
// This is deliberately not a real identity system.
type AuthService interface {
	Register(email, password, name, phone string) (*domain.User, string, error)
	Login(email, password string) (string, *domain.User, error)
	ValidateToken(tokenString string) (*Claims, error)
	GetUserByID(id string) (*domain.User, error)
}

type authService struct {
	jwtSecret string

	mu    sync.Mutex
	users []domain.User
}

// SeedAdmin describes the admin account created at startup.
type SeedAdmin struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// NewAuthService creates the auth service with the seeded admin account.
func NewAuthService(jwtSecret string, admin SeedAdmin) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &authService{
		jwtSecret: jwtSecret,
		users: []domain.User{
			{
				ID:           uuid.NewString(),
				Email:        admin.Email,
				PasswordHash: string(hash),
				Name:         admin.Name,
				Phone:        admin.Phone,
				IsAdmin:      true,
			},
		},
	}, nil
}

// Register creates a new customer account and returns it with a session token.
func (s *authService) Register(email, password, name, phone string) (*domain.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByEmailLocked(email) != nil {
		return nil, "", ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Phone:        phone,
		IsAdmin:      false,
	}
	s.users = append(s.users, user)

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// Login authenticates a user and returns a session token. The error is the
// same whether the email is unknown or the password is wrong.
func (s *authService) Login(email, password string) (string, *domain.User, error) {
	s.mu.Lock()
	user := s.findByEmailLocked(email)
	s.mu.Unlock()

	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(*user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// ValidateToken parses and verifies a session token.
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *authService) GetUserByID(id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// findByEmailLocked matches emails case-insensitively. Callers hold s.mu.
func (s *authService) findByEmailLocked(email string) *domain.User {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return &s.users[i]
		}
	}
	return nil
}

func (s *authService) issueToken(user domain.User) (string, error) {
	role := RoleUser
	if user.IsAdmin {
		role = RoleAdmin
	}

	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}
