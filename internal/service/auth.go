// Package service implements the dev server's business logic on top of the
// in-memory repositories.
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/edenai/tutorchat/internal/models"
	"github.com/edenai/tutorchat/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when email or password is wrong.
	ErrInvalidCredentials = errors.New("wrong email or password")
	// ErrUserDisabled is returned when a deactivated account signs in.
	ErrUserDisabled = errors.New("account is disabled")
	// ErrInvalidToken is returned for unparsable or expired tokens.
	ErrInvalidToken = errors.New("could not validate credentials")
	// ErrWrongPassword is returned when the current password check fails.
	ErrWrongPassword = errors.New("current password is incorrect")
	// ErrPasswordTooLong is returned for passwords over bcrypt's 72-byte
	// limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
	// ErrInvalidEmail is returned for malformed registration emails.
	ErrInvalidEmail = errors.New("invalid email address")
)

// AuthService handles registration, login, token issuance and password
// changes.
type AuthService struct {
	users  *repository.UserRepository
	secret []byte
	ttl    time.Duration
}

// NewAuthService builds an AuthService signing tokens with secret.
func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), ttl: ttl}
}

// Register creates a regular user account. The role is fixed: registration
// never creates admins, regardless of what a client sends.
func (s *AuthService) Register(email, password, fullName string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.users.Create(email, strings.TrimSpace(fullName), hash, models.RoleUser)
	return err
}

// Seed ensures an account with the given role exists, for the initial
// admin. Existing accounts are left untouched.
func (s *AuthService) Seed(email, password, fullName string, role models.Role) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.users.Create(email, fullName, hash, role)
	return err
}

// Authenticate checks email and password and returns the account.
func (s *AuthService) Authenticate(email, password string) (*repository.UserRecord, error) {
	u, err := s.users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrUserDisabled
	}
	return u, nil
}

// IssueToken signs a bearer token for the account. The token is opaque to
// the client; only this server interprets it.
func (s *AuthService) IssueToken(u *repository.UserRecord) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   u.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ResolveToken verifies a bearer token and returns the account behind it.
func (s *AuthService) ResolveToken(token string) (*repository.UserRecord, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	u, err := s.users.GetByEmail(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return u, nil
}

// ChangePassword verifies the current password and stores a new one.
func (s *AuthService) ChangePassword(userID int64, current, newPassword string) error {
	u, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(current)) != nil {
		return ErrWrongPassword
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(u.ID, hash)
}

func hashPassword(password string) ([]byte, error) {
	if len(password) > 72 {
		return nil, ErrPasswordTooLong
	}
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}
