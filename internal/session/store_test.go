package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.Save("history", []string{"a", "b"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	var got []string
	if !store.Load("history", &got) {
		t.Fatal("expected load to succeed")
	}
	if len(got) != 2 || got[0] != "a" {
		t.Errorf("unexpected value: %v", got)
	}
}

func TestStore_MissingKey(t *testing.T) {
	store := NewStore(t.TempDir())
	var got []string
	if store.Load("nope", &got) {
		t.Error("expected load of missing key to fail")
	}
}

func TestStore_CorruptValue(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "theme.json"), []byte("!!!"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewStore(dir)
	var got string
	if store.Load("theme", &got) {
		t.Error("expected load of corrupt value to fail")
	}
}

func TestLoadTheme_Fallbacks(t *testing.T) {
	store := NewStore(t.TempDir())

	if got := LoadTheme(store); got != ThemeLight {
		t.Errorf("expected light for missing preference, got %q", got)
	}

	if err := store.Save("theme", "neon"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := LoadTheme(store); got != ThemeLight {
		t.Errorf("expected light for unknown preference, got %q", got)
	}

	SaveTheme(store, ThemeDark)
	if got := LoadTheme(store); got != ThemeDark {
		t.Errorf("expected dark after save, got %q", got)
	}
}

func TestTheme_Toggle(t *testing.T) {
	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle() != ThemeLight {
		t.Error("toggle should flip between light and dark")
	}
}
