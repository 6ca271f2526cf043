package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AdvaitK2607/genai-codeassistant/internal/model"
)

// AttachmentSet holds the files staged for the next submission.
// Attachments are immutable values; every mutation builds a new underlying
// slice rather than editing in place, so snapshots handed out earlier stay
// valid.
type AttachmentSet struct {
	items []model.Attachment
}

// SetFromSelection replaces the whole set with a new selection.
func (s *AttachmentSet) SetFromSelection(files []model.Attachment) {
	s.items = append([]model.Attachment(nil), files...)
}

// RemoveByName drops every attachment whose name equals name. Name
// collisions are an accepted policy: staging two files called "data.csv"
// and removing "data.csv" removes both.
func (s *AttachmentSet) RemoveByName(name string) {
	next := make([]model.Attachment, 0, len(s.items))
	for _, att := range s.items {
		if att.Name != name {
			next = append(next, att)
		}
	}
	s.items = next
}

// Clear empties the set.
func (s *AttachmentSet) Clear() {
	s.items = nil
}

// Current returns a snapshot of the staged attachments in staging order.
// The snapshot does not track later mutations.
func (s *AttachmentSet) Current() []model.Attachment {
	return append([]model.Attachment(nil), s.items...)
}

// Len returns the number of staged attachments.
func (s *AttachmentSet) Len() int {
	return len(s.items)
}

// StatAttachment resolves a user-typed path into an attachment, expanding
// a leading ~ and verifying the file is a readable regular file.
func StatAttachment(path string) (model.Attachment, error) {
	path = ExpandTilde(strings.TrimSpace(path))
	info, err := os.Stat(path)
	if err != nil {
		return model.Attachment{}, err
	}
	if info.IsDir() {
		return model.Attachment{}, fmt.Errorf("%s is a directory", path)
	}
	return model.Attachment{
		Name: filepath.Base(path),
		Path: path,
		Size: info.Size(),
	}, nil
}

// ExpandTilde expands ~ to the user's home directory
func ExpandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}
	return path
}
