package tokenstore

import (
	"os"
	"path/filepath"
	"testing"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "token"))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newStore(t)
	if err := s.Save("tok-123"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != "tok-123" {
		t.Errorf("Load = %q; want %q", got, "tok-123")
	}
}

func TestLoad_NoCredential(t *testing.T) {
	s := newStore(t)
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != "" {
		t.Errorf("Load = %q; want empty", got)
	}
}

func TestSave_Overwrites(t *testing.T) {
	s := newStore(t)
	if err := s.Save("old"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save("new"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, _ := s.Load()
	if got != "new" {
		t.Errorf("Load = %q; want %q", got, "new")
	}
}

func TestClear_Idempotent(t *testing.T) {
	s := newStore(t)
	if err := s.Save("tok"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("first Clear failed: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != "" {
		t.Errorf("Load after Clear = %q; want empty", got)
	}
}

func TestSave_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token")
	s := New(path)
	if err := s.Save("tok"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("token file missing: %v", err)
	}
}

func TestToken_ReadsAtCallTime(t *testing.T) {
	s := newStore(t)
	if s.Token() != "" {
		t.Error("Token on empty store should be empty")
	}
	_ = s.Save("fresh")
	if got := s.Token(); got != "fresh" {
		t.Errorf("Token = %q; want %q", got, "fresh")
	}
	_ = s.Clear()
	if s.Token() != "" {
		t.Error("Token after Clear should be empty")
	}
}
