package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"gorm.io/gorm"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
	"bookstore/pkg/password"
)

// MinPasswordLength is the only password strength rule the store enforces.
const MinPasswordLength = 6

// AuthService handles registration, credential verification, and session
// tokens. Password hashing is delegated to the configured Hasher.
type AuthService struct {
	userRepo      repositories.UserRepository
	hasher        password.Hasher
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, hasher password.Hasher, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 24 * time.Hour,
	}
}

// Register creates a new regular-user account. The username and email must
// both be unused (case-sensitive exact match as stored); only the password
// hash is persisted.
func (s *AuthService) Register(username, email, pass string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if len(username) < 3 || len(username) > 20 {
		return fmt.Errorf("%w: username must be 3-20 characters", ErrValidation)
	}
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if len(pass) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}

	if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
		return fmt.Errorf("%w: username '%s' already taken", ErrAlreadyExists, username)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return fmt.Errorf("%w: email '%s' already registered", ErrAlreadyExists, email)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.hasher.Hash(pass)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsBanned:     false,
	}
	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Authenticate verifies a username/password pair and returns the account
// record on match. Wrong password and unknown username both yield
// ErrInvalidCredentials; callers cannot tell which.
func (s *AuthService) Authenticate(username, pass string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !s.hasher.Compare(user.PasswordHash, pass) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates and issues a JWT session token. Banned accounts are
// refused even with a correct password.
func (s *AuthService) Login(username, pass string) (*models.User, string, error) {
	user, err := s.Authenticate(username, pass)
	if err != nil {
		return nil, "", err
	}
	if user.IsBanned {
		return nil, "", ErrBanned
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(s.tokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// IsBanned reports whether the named account is banned. Unknown usernames
// report false; callers that need existence must check separately.
func (s *AuthService) IsBanned(username string) bool {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return false
	}
	return user.IsBanned
}
