// Package repository provides the in-memory persistence used by the dev
// server. It stands in for the production backend's database; nothing here
// survives a restart.
package repository

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/edenai/tutorchat/internal/models"
)

var (
	// ErrEmailTaken is returned when registering an email that exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned for lookups of unknown users.
	ErrUserNotFound = errors.New("user not found")
)

// UserRecord is a stored account.
type UserRecord struct {
	ID           int64
	Email        string
	FullName     string
	Role         models.Role
	PasswordHash []byte
	IsActive     bool
	CreatedAt    time.Time
}

// AdminView converts the record to its wire representation.
func (u *UserRecord) AdminView() models.AdminUser {
	return models.AdminUser{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// UserRepository keeps accounts in memory, keyed by id and email.
type UserRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]*UserRecord
	byEmail map[string]*UserRecord
}

// NewUserRepository returns an empty repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[int64]*UserRecord),
		byEmail: make(map[string]*UserRecord),
	}
}

// Create stores a new active account. Returns ErrEmailTaken when the email
// is already registered.
func (r *UserRepository) Create(email, fullName string, passwordHash []byte, role models.Role) (*UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[email]; ok {
		return nil, ErrEmailTaken
	}
	r.nextID++
	u := &UserRecord{
		ID:           r.nextID,
		Email:        email,
		FullName:     fullName,
		Role:         role,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return cloneUser(u), nil
}

// GetByEmail looks an account up by email.
func (r *UserRepository) GetByEmail(email string) (*UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(u), nil
}

// GetByID looks an account up by id.
func (r *UserRepository) GetByID(id int64) (*UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(u), nil
}

// List returns all accounts, newest first.
func (r *UserRepository) List() []UserRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]UserRecord, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// SetRole updates an account's role.
func (r *UserRepository) SetRole(id int64, role models.Role) (*UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	u.Role = role
	return cloneUser(u), nil
}

// SetActive enables or disables an account.
func (r *UserRepository) SetActive(id int64, active bool) (*UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	u.IsActive = active
	return cloneUser(u), nil
}

// UpdatePassword replaces an account's password hash.
func (r *UserRepository) UpdatePassword(id int64, passwordHash []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

// Count returns the number of accounts.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func cloneUser(u *UserRecord) *UserRecord {
	c := *u
	c.PasswordHash = append([]byte(nil), u.PasswordHash...)
	return &c
}
