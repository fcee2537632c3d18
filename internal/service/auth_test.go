package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/edenai/tutorchat/internal/models"
	"github.com/edenai/tutorchat/internal/repository"
)

func newAuthService() (*AuthService, *repository.UserRepository) {
	users := repository.NewUserRepository()
	return NewAuthService(users, "test-secret", time.Hour), users
}

func TestRegister_CreatesRegularUser(t *testing.T) {
	svc, users := newAuthService()

	if err := svc.Register("A@X.com", "pw", "Alice"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	u, err := users.GetByEmail("a@x.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if u.Role != models.RoleUser {
		t.Errorf("role = %q; registration must never create admins", u.Role)
	}
	if !u.IsActive {
		t.Error("new accounts should be active")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()
	if err := svc.Register("a@x.com", "pw", ""); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	err := svc.Register("a@x.com", "other", "")
	if !errors.Is(err, repository.ErrEmailTaken) {
		t.Errorf("Register = %v; want ErrEmailTaken", err)
	}
}

func TestRegister_PasswordTooLong(t *testing.T) {
	svc, _ := newAuthService()
	err := svc.Register("a@x.com", strings.Repeat("x", 73), "")
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("Register = %v; want ErrPasswordTooLong", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newAuthService()
	if err := svc.Register("a@x.com", "pw", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	u, err := svc.Authenticate("a@x.com", "pw")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if u.Email != "a@x.com" {
		t.Errorf("email = %q", u.Email)
	}

	if _, err := svc.Authenticate("a@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: %v; want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate("nobody@x.com", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: %v; want ErrInvalidCredentials", err)
	}
}

func TestAuthenticate_DisabledAccount(t *testing.T) {
	svc, users := newAuthService()
	if err := svc.Register("a@x.com", "pw", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	u, _ := users.GetByEmail("a@x.com")
	if _, err := users.SetActive(u.ID, false); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}

	if _, err := svc.Authenticate("a@x.com", "pw"); !errors.Is(err, ErrUserDisabled) {
		t.Errorf("Authenticate = %v; want ErrUserDisabled", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc, _ := newAuthService()
	if err := svc.Register("a@x.com", "pw", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	u, err := svc.Authenticate("a@x.com", "pw")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}

	tok, err := svc.IssueToken(u)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	resolved, err := svc.ResolveToken(tok)
	if err != nil {
		t.Fatalf("ResolveToken failed: %v", err)
	}
	if resolved.ID != u.ID {
		t.Errorf("resolved id = %d; want %d", resolved.ID, u.ID)
	}
}

func TestResolveToken_Invalid(t *testing.T) {
	svc, _ := newAuthService()
	if _, err := svc.ResolveToken("garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ResolveToken = %v; want ErrInvalidToken", err)
	}

	// A token signed with a different secret must be rejected.
	other := NewAuthService(repository.NewUserRepository(), "other-secret", time.Hour)
	_ = other.Register("a@x.com", "pw", "")
	u, _ := other.Authenticate("a@x.com", "pw")
	tok, _ := other.IssueToken(u)
	if _, err := svc.ResolveToken(tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign token: %v; want ErrInvalidToken", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, users := newAuthService()
	if err := svc.Register("a@x.com", "old", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	u, _ := users.GetByEmail("a@x.com")

	if err := svc.ChangePassword(u.ID, "wrong", "new"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("ChangePassword = %v; want ErrWrongPassword", err)
	}
	if err := svc.ChangePassword(u.ID, "old", "new"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}
	if _, err := svc.Authenticate("a@x.com", "new"); err != nil {
		t.Errorf("Authenticate with new password failed: %v", err)
	}
	if _, err := svc.Authenticate("a@x.com", "old"); err == nil {
		t.Error("old password still accepted")
	}
}

func TestSeed_Idempotent(t *testing.T) {
	svc, users := newAuthService()
	if err := svc.Seed("admin@eden.local", "pw", "Admin", models.RoleAdmin); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if err := svc.Seed("admin@eden.local", "different", "Admin", models.RoleAdmin); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}
	if users.Count() != 1 {
		t.Errorf("user count = %d; want 1", users.Count())
	}
	u, _ := users.GetByEmail("admin@eden.local")
	if u.Role != models.RoleAdmin {
		t.Errorf("role = %q; want admin", u.Role)
	}
}
