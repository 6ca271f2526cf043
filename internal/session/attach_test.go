package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AdvaitK2607/genai-codeassistant/internal/model"
)

func TestRemoveByName(t *testing.T) {
	var set AttachmentSet
	set.SetFromSelection([]model.Attachment{
		{Name: "a.txt", Path: "/tmp/a.txt"},
		{Name: "b.txt", Path: "/tmp/b.txt"},
	})

	set.RemoveByName("a.txt")

	got := set.Current()
	if len(got) != 1 || got[0].Name != "b.txt" {
		t.Errorf("expected exactly b.txt, got %v", got)
	}
}

func TestRemoveByName_RemovesAllCollisions(t *testing.T) {
	var set AttachmentSet
	set.SetFromSelection([]model.Attachment{
		{Name: "data.csv", Path: "/one/data.csv"},
		{Name: "notes.txt", Path: "/notes.txt"},
		{Name: "data.csv", Path: "/two/data.csv"},
	})

	set.RemoveByName("data.csv")

	got := set.Current()
	if len(got) != 1 || got[0].Name != "notes.txt" {
		t.Errorf("expected only notes.txt, got %v", got)
	}
}

func TestSetFromSelection_WholesaleReplace(t *testing.T) {
	var set AttachmentSet
	set.SetFromSelection([]model.Attachment{{Name: "old.txt"}})
	set.SetFromSelection([]model.Attachment{{Name: "new1.txt"}, {Name: "new2.txt"}})

	got := set.Current()
	if len(got) != 2 || got[0].Name != "new1.txt" || got[1].Name != "new2.txt" {
		t.Errorf("expected replacement selection, got %v", got)
	}
}

func TestCurrent_SnapshotSemantics(t *testing.T) {
	var set AttachmentSet
	set.SetFromSelection([]model.Attachment{{Name: "a.txt"}})

	snap := set.Current()
	set.RemoveByName("a.txt")

	if len(snap) != 1 || snap[0].Name != "a.txt" {
		t.Errorf("snapshot should not track later mutations, got %v", snap)
	}
	if set.Len() != 0 {
		t.Errorf("expected empty set after removal, got %d", set.Len())
	}
}

func TestClear(t *testing.T) {
	var set AttachmentSet
	set.SetFromSelection([]model.Attachment{{Name: "a"}, {Name: "b"}})
	set.Clear()
	if set.Len() != 0 {
		t.Errorf("expected empty set, got %d", set.Len())
	}
}

func TestStatAttachment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "claims.csv")
	if err := os.WriteFile(path, []byte("a,b\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	att, err := StatAttachment(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if att.Name != "claims.csv" {
		t.Errorf("expected name claims.csv, got %q", att.Name)
	}
	if att.Size != 4 {
		t.Errorf("expected size 4, got %d", att.Size)
	}
}

func TestStatAttachment_MissingFile(t *testing.T) {
	if _, err := StatAttachment(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestStatAttachment_DirectoryRejected(t *testing.T) {
	if _, err := StatAttachment(t.TempDir()); err == nil {
		t.Fatal("expected error for directory")
	}
}
