package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/AdvaitK2607/genai-codeassistant/internal/analyze"
	"github.com/AdvaitK2607/genai-codeassistant/internal/model"
	"github.com/AdvaitK2607/genai-codeassistant/internal/session"
)

// inputMode selects what the keyboard is currently driving.
type inputMode int

const (
	modePrompt  inputMode = iota // typing into the prompt box
	modeAttach                   // typing a path list to stage
	modeRemove                   // typing an attachment name to unstage
	modeHistory                  // navigating the history overlay
)

// Deps are the collaborators handed to the dashboard by main. Explicit
// construction instead of package-level singletons keeps every component
// swappable in tests.
type Deps struct {
	Client      *analyze.Client
	History     *session.History
	Attachments *session.AttachmentSet
	Notifier    *session.Notifier
	Store       *session.Store
	Log         *zap.SugaredLogger
	ModelID     string
}

// AppModel holds the TUI state.
type AppModel struct {
	deps Deps

	// Input
	Prompt    textarea.Model
	PathInput textinput.Model
	Mode      inputMode

	// Results. Panels are cleared together on reset and only together;
	// a fresh response overwrites all four at once.
	Panels     [model.TabCount]string
	Viewports  [model.TabCount]viewport.Model
	Metrics    model.Metrics
	ActiveTab  model.Tab
	HaveResult bool

	// One analysis in flight. Cleared on every exit path of the request
	// cycle, success or failure.
	Busy bool
	Spin spinner.Model

	Theme session.Theme

	// History overlay
	HistoryItems []string
	HistorySel   int

	WindowSize tea.WindowSizeMsg
}

// NewModel returns the initial dashboard state.
func NewModel(deps Deps) AppModel {
	ta := textarea.New()
	ta.Placeholder = "Describe the problem to analyze..."
	ta.Focus()
	ta.CharLimit = 0
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()
	// Enter submits; newlines come from pasted text only.
	ta.KeyMap.InsertNewline.SetEnabled(false)

	ti := textinput.New()
	ti.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := AppModel{
		deps:      deps,
		Prompt:    ta,
		PathInput: ti,
		Spin:      sp,
		Metrics:   model.PlaceholderMetrics(),
		Theme:     session.LoadTheme(deps.Store),
	}
	for i := range m.Viewports {
		m.Viewports[i] = viewport.New(80, 16)
	}
	return m
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, expireTickCmd())
}
