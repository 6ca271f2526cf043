package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AdvaitK2607/genai-codeassistant/internal/analyze"
	"github.com/AdvaitK2607/genai-codeassistant/internal/model"
	"github.com/AdvaitK2607/genai-codeassistant/internal/session"
)

// MsgAnalysisDone carries a successful backend reply. Prompt rides along
// so the right text is recorded even if the input box changed while the
// request was in flight.
type MsgAnalysisDone struct {
	Prompt string
	Resp   *analyze.Response
}

// MsgAnalysisFailed carries any failure of the request cycle.
type MsgAnalysisFailed struct {
	Err error
}

// MsgExpireTick drives notification expiry.
type MsgExpireTick time.Time

func expireTickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return MsgExpireTick(t)
	})
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Prompt.SetWidth(max(msg.Width-6, 20))
		w, h := panelSize(msg)
		for i := range m.Viewports {
			m.Viewports[i].Width = w
			m.Viewports[i].Height = h
		}
		return m, nil

	case MsgExpireTick:
		m.deps.Notifier.Expire()
		return m, expireTickCmd()

	case MsgAnalysisDone:
		// Unwind first: the busy flag clears on every exit path.
		m.Busy = false
		m.presentResult(msg.Resp)
		m.deps.History.Record(msg.Prompt)
		m.ActiveTab = model.TabExplanation
		m.deps.Notifier.Push("Analysis complete", session.SeveritySuccess, session.DefaultTTL)
		m.deps.Log.Infow("analysis succeeded", "model", msg.Resp.ModelUsed, "content_bytes", len(msg.Resp.Content))
		return m, nil

	case MsgAnalysisFailed:
		m.Busy = false
		m.deps.Notifier.Push(failureMessage(msg.Err), session.SeverityError, session.ErrorTTL)
		m.deps.Log.Warnw("analysis failed", "error", msg.Err)
		return m, nil

	case tea.KeyMsg:
		switch m.Mode {
		case modeAttach, modeRemove:
			return m.updatePathInput(msg)
		case modeHistory:
			return m.updateHistoryOverlay(msg)
		}
		return m.updatePrompt(msg)
	}

	if m.Busy {
		m.Spin, cmd = m.Spin.Update(msg)
	}
	return m, cmd
}

// updatePrompt handles keys in the normal prompt-editing mode.
func (m AppModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		// The "button": disabled while a request is in flight.
		if m.Busy {
			return m, nil
		}
		return m.submit()

	case "ctrl+s":
		// The shortcut path does not check the busy flag, matching the
		// original dashboard: overlapping submissions are possible and the
		// last completion wins.
		return m.submit()

	case "tab":
		m.ActiveTab = (m.ActiveTab + 1) % model.TabCount
		return m, nil

	case "shift+tab":
		m.ActiveTab = (m.ActiveTab + model.TabCount - 1) % model.TabCount
		return m, nil

	case "ctrl+a":
		m.Mode = modeAttach
		m.PathInput.Placeholder = "Paths to attach (space separated)..."
		m.PathInput.SetValue("")
		m.PathInput.Focus()
		m.Prompt.Blur()
		return m, nil

	case "ctrl+x":
		if m.deps.Attachments.Len() == 0 {
			m.deps.Notifier.Push("No files staged", session.SeverityInfo, session.DefaultTTL)
			return m, nil
		}
		m.Mode = modeRemove
		m.PathInput.Placeholder = "File name to remove..."
		m.PathInput.SetValue("")
		m.PathInput.Focus()
		m.Prompt.Blur()
		return m, nil

	case "ctrl+h":
		m.HistoryItems = m.deps.History.Entries()
		if len(m.HistoryItems) == 0 {
			m.deps.Notifier.Push("No history yet", session.SeverityInfo, session.DefaultTTL)
			return m, nil
		}
		m.Mode = modeHistory
		m.HistorySel = 0
		m.Prompt.Blur()
		return m, nil

	case "ctrl+e":
		name, err := exportPanel(".", m.ActiveTab, m.Panels[m.ActiveTab], time.Now())
		if err != nil {
			m.deps.Notifier.Push(err.Error(), session.SeverityError, session.ErrorTTL)
			return m, nil
		}
		m.deps.Notifier.Push("Saved "+name, session.SeveritySuccess, session.DefaultTTL)
		return m, nil

	case "ctrl+t":
		m.Theme = m.Theme.Toggle()
		session.SaveTheme(m.deps.Store, m.Theme)
		return m, nil

	case "ctrl+l":
		// Explicit reset: the four panels clear together, never partially.
		for i := range m.Panels {
			m.Panels[i] = ""
			m.Viewports[i].SetContent("")
		}
		m.Metrics = model.PlaceholderMetrics()
		m.HaveResult = false
		m.deps.Attachments.Clear()
		m.Prompt.SetValue("")
		m.deps.Notifier.Push("Session cleared", session.SeverityInfo, session.DefaultTTL)
		return m, nil

	case "ctrl+k":
		if active := m.deps.Notifier.Active(); len(active) > 0 {
			m.deps.Notifier.Dismiss(active[0].ID)
		}
		return m, nil

	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.Viewports[m.ActiveTab], cmd = m.Viewports[m.ActiveTab].Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.Prompt, cmd = m.Prompt.Update(msg)
	return m, cmd
}

// submit starts the request cycle: Idle -> Submitting.
func (m AppModel) submit() (tea.Model, tea.Cmd) {
	prompt := strings.TrimSpace(m.Prompt.Value())
	if prompt == "" {
		m.deps.Notifier.Push("Prompt cannot be empty!", session.SeverityError, session.ErrorTTL)
		return m, nil
	}

	m.Busy = true
	files := m.deps.Attachments.Current()
	m.deps.Log.Infow("submitting analysis", "model", m.deps.ModelID, "files", len(files))
	return m, tea.Batch(m.Spin.Tick, submitCmd(m.deps.Client, prompt, m.deps.ModelID, files))
}

// submitCmd invokes the backend exactly once off the event loop.
func submitCmd(client *analyze.Client, prompt, modelID string, files []model.Attachment) tea.Cmd {
	return func() (msg tea.Msg) {
		// The returned message is the only thing that unwinds the busy
		// flag, so a panic below must surface as a failure message rather
		// than escape.
		defer func() {
			if r := recover(); r != nil {
				msg = MsgAnalysisFailed{Err: fmt.Errorf("internal error: %v", r)}
			}
		}()

		resp, err := client.Analyze(context.Background(), analyze.Request{
			Prompt: prompt,
			Model:  modelID,
			Files:  files,
		})
		if err != nil {
			return MsgAnalysisFailed{Err: err}
		}
		return MsgAnalysisDone{Prompt: prompt, Resp: resp}
	}
}

// presentResult pushes a parsed reply into all four panels plus the
// indicator row. Panels whose section is absent come out empty; indicators
// reset to the placeholder when the reply carried none.
func (m *AppModel) presentResult(resp *analyze.Response) {
	sections := analyze.Parse(resp.Content)
	for t := model.Tab(0); t < model.TabCount; t++ {
		m.Panels[t] = sections.Get(t.SectionKey())
		m.Viewports[t].SetContent(m.Panels[t])
		m.Viewports[t].GotoTop()
	}
	m.Metrics = resp.Metrics.Indicators()
	m.HaveResult = true
}

// updatePathInput handles the attach and remove input line.
func (m AppModel) updatePathInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		value := strings.TrimSpace(m.PathInput.Value())
		mode := m.Mode
		m.closePathInput()
		if value == "" {
			return m, nil
		}
		if mode == modeRemove {
			m.deps.Attachments.RemoveByName(value)
			m.deps.Notifier.Push("Removed "+value, session.SeverityInfo, session.DefaultTTL)
			return m, nil
		}
		return m.stageSelection(value), nil

	case tea.KeyEsc:
		m.closePathInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.PathInput, cmd = m.PathInput.Update(msg)
	return m, cmd
}

func (m *AppModel) closePathInput() {
	m.Mode = modePrompt
	m.PathInput.Blur()
	m.PathInput.SetValue("")
	m.Prompt.Focus()
}

// stageSelection resolves a typed path list into attachments and replaces
// the staged set wholesale, like a browser file picker does. Unreadable
// paths are reported and skipped; they never poison the rest of the
// selection.
func (m AppModel) stageSelection(value string) AppModel {
	var files []model.Attachment
	for _, path := range strings.Fields(value) {
		att, err := session.StatAttachment(path)
		if err != nil {
			m.deps.Notifier.Push(fmt.Sprintf("Cannot attach %s: %v", path, err), session.SeverityError, session.ErrorTTL)
			continue
		}
		files = append(files, att)
	}
	if len(files) == 0 {
		return m
	}
	m.deps.Attachments.SetFromSelection(files)
	m.deps.Notifier.Push(fmt.Sprintf("Staged %d file(s)", len(files)), session.SeverityInfo, session.DefaultTTL)
	return m
}

// updateHistoryOverlay handles keys while the history list is open.
// Picking an entry loads it into the prompt box; the ledger itself never
// changes here.
func (m AppModel) updateHistoryOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.HistorySel > 0 {
			m.HistorySel--
		}
	case "down", "j":
		if m.HistorySel < len(m.HistoryItems)-1 {
			m.HistorySel++
		}
	case "enter":
		m.Prompt.SetValue(m.HistoryItems[m.HistorySel])
		m.Mode = modePrompt
		m.Prompt.Focus()
	case "esc", "ctrl+h":
		m.Mode = modePrompt
		m.Prompt.Focus()
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// failureMessage prefers the server-supplied error text when there is one.
func failureMessage(err error) string {
	var statusErr *analyze.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	if errors.Is(err, analyze.ErrMissingContent) {
		return "Empty response from the analysis backend"
	}
	return "Analysis failed: " + err.Error()
}
