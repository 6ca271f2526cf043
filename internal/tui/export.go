package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AdvaitK2607/genai-codeassistant/internal/model"
)

// ErrNothingToExport is returned when the active panel has no content.
// Exporting must refuse rather than write an empty file.
var ErrNothingToExport = errors.New("nothing to export on this panel")

// exportPanel writes the panel's plain text to "<panel>-<date>.md" in dir
// and returns the file name.
func exportPanel(dir string, tab model.Tab, body string, now time.Time) (string, error) {
	if strings.TrimSpace(body) == "" {
		return "", ErrNothingToExport
	}
	name := fmt.Sprintf("%s-%s.md", panelSlug(tab), now.Format("2006-01-02"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}
	return name, nil
}

func panelSlug(tab model.Tab) string {
	slug := strings.ToLower(tab.Title())
	return strings.ReplaceAll(slug, " ", "-")
}
