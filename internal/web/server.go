// Package web is the browser-facing presenter: the same analysis flow as
// the TUI, rendered as an HTML page. The local process proxies the form
// submission to the remote backend so the browser never needs to know
// where the backend lives.
package web

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"

	"github.com/AdvaitK2607/genai-codeassistant/internal/analyze"
	"github.com/AdvaitK2607/genai-codeassistant/internal/model"
	"github.com/AdvaitK2607/genai-codeassistant/internal/session"
)

// Server serves the dashboard page and handles form submissions.
type Server struct {
	client  *analyze.Client
	history *session.History
	modelID string
	log     *zap.SugaredLogger
	md      goldmark.Markdown
}

// NewServer wires the web presenter to its collaborators.
func NewServer(client *analyze.Client, history *session.History, modelID string, logger *zap.SugaredLogger) *Server {
	return &Server{
		client:  client,
		history: history,
		modelID: modelID,
		log:     logger,
		md:      goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
}

// Handler returns the HTTP handler for the dashboard.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

// ListenAndServe starts the server on addr.
func (s *Server) ListenAndServe(addr string) error {
	fmt.Printf("Starting dashboard at http://%s\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// panelView is one rendered result panel.
type panelView struct {
	Title string
	Body  template.HTML
}

// pageData feeds the page template.
type pageData struct {
	ModelID  string
	Prompt   string
	Error    string
	Panels   []panelView
	Metrics  model.Metrics
	History  []string
	HasReply bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := pageData{ModelID: s.modelID, Metrics: model.PlaceholderMetrics()}

	if r.Method == http.MethodPost {
		s.runAnalysis(r, &data)
	}

	data.History = s.history.Entries()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.log.Warnw("render page", "error", err)
	}
}

// runAnalysis performs one submission on behalf of the browser.
func (s *Server) runAnalysis(r *http.Request, data *pageData) {
	prompt := strings.TrimSpace(r.FormValue("prompt"))
	data.Prompt = prompt
	if prompt == "" {
		data.Error = "Prompt cannot be empty!"
		return
	}

	resp, err := s.client.Analyze(r.Context(), analyze.Request{
		Prompt: prompt,
		Model:  s.modelID,
	})
	if err != nil {
		s.log.Warnw("analysis failed", "error", err)
		data.Error = err.Error()
		return
	}

	sections := analyze.Parse(resp.Content)
	for t := model.Tab(0); t < model.TabCount; t++ {
		data.Panels = append(data.Panels, panelView{
			Title: t.SectionKey(),
			Body:  s.renderMarkdown(sections.Get(t.SectionKey())),
		})
	}
	data.Metrics = resp.Metrics.Indicators()
	data.HasReply = true
	s.history.Record(prompt)
}

// renderMarkdown converts one panel's markdown to HTML. A rendering
// failure falls back to escaped raw text for that panel only; the other
// panels are unaffected.
func (s *Server) renderMarkdown(src string) template.HTML {
	if strings.TrimSpace(src) == "" {
		return template.HTML("<p class=\"empty\">No content in this section.</p>")
	}
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(src), &buf); err != nil {
		s.log.Warnw("markdown render failed, falling back to raw text", "error", err)
		return template.HTML("<pre>" + html.EscapeString(src) + "</pre>")
	}
	return template.HTML(buf.String())
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>GenAI Code Assistant</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
textarea { width: 100%; height: 6rem; }
.metrics { display: flex; gap: 1rem; margin: 1rem 0; }
.metrics div { border: 1px solid #ccc; border-radius: 6px; padding: 0.5rem 1.5rem; text-align: center; }
.panel { border: 1px solid #ccc; border-radius: 6px; padding: 0 1rem; margin: 1rem 0; }
.error { color: #b00; }
.empty { color: #888; }
pre { overflow-x: auto; }
</style>
</head>
<body>
<h1>GenAI Code Assistant</h1>
<p>Model: {{.ModelID}}</p>
<form method="post">
<textarea name="prompt" placeholder="Describe the problem to analyze...">{{.Prompt}}</textarea>
<p><button type="submit">Analyze</button></p>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<div class="metrics">
<div>Quality<br><strong>{{.Metrics.Quality}}</strong></div>
<div>Complexity<br><strong>{{.Metrics.Complexity}}</strong></div>
<div>Security<br><strong>{{.Metrics.Security}}</strong></div>
</div>
{{range .Panels}}
<div class="panel">
<h2>{{.Title}}</h2>
{{.Body}}
</div>
{{end}}
{{if .History}}
<h2>History</h2>
<ol>
{{range .History}}<li>{{.}}</li>{{end}}
</ol>
{{end}}
</body>
</html>
`))
