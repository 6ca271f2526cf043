package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	latest "github.com/tcnksm/go-latest"

	"github.com/AdvaitK2607/genai-codeassistant/internal/analyze"
	"github.com/AdvaitK2607/genai-codeassistant/internal/config"
	applog "github.com/AdvaitK2607/genai-codeassistant/internal/log"
	"github.com/AdvaitK2607/genai-codeassistant/internal/model"
	"github.com/AdvaitK2607/genai-codeassistant/internal/session"
	"github.com/AdvaitK2607/genai-codeassistant/internal/tui"
	"github.com/AdvaitK2607/genai-codeassistant/internal/web"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "AdvaitK2607",
		Repository: "genai-codeassistant",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/AdvaitK2607/genai-codeassistant/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: genai [options]\n\n")
		fmt.Fprintf(os.Stderr, "genai is a terminal dashboard for the AI analysis backend.\n")
		fmt.Fprintf(os.Stderr, "It submits a prompt (plus optional files) and shows the reply as\n")
		fmt.Fprintf(os.Stderr, "Explanation / Code / Complexity / Suggestions panels.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  genai                                # Start TUI mode\n")
		fmt.Fprintf(os.Stderr, "  genai --ask \"explain chain ladder\"   # One-shot CLI mode\n")
		fmt.Fprintf(os.Stderr, "  genai --ask \"...\" -f claims.csv -j   # Attach a file, JSON output\n")
		fmt.Fprintf(os.Stderr, "  genai --web                          # Browser dashboard\n")
	}

	serverFlag := pflag.StringP("server", "s", "", "Analysis backend base URL (overrides config)")
	modelFlag := pflag.StringP("model", "m", "", "Model identifier to request (overrides config)")
	configFlag := pflag.StringP("config", "c", "", "Path to config.yaml (default: state dir)")
	askFlag := pflag.StringP("ask", "a", "", "One-shot prompt: print the analysis and exit")
	attachFlags := pflag.StringArrayP("file", "f", nil, "Attach a file to a one-shot prompt (repeatable)")
	jsonFlag := pflag.BoolP("json", "j", false, "With --ask: output parsed sections as JSON")
	webFlag := pflag.BoolP("web", "w", false, "Start the browser dashboard")
	listenFlag := pflag.StringP("listen", "l", "", "Web mode bind address (overrides config)")
	healthFlag := pflag.Bool("health", false, "Ping the backend health endpoint and exit")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("genai version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	stateDir, err := session.DefaultDir()
	if err != nil {
		// No home directory: state degrades to the working directory.
		stateDir = ".genai-codeassistant"
	}

	cfgPath := *configFlag
	if cfgPath == "" {
		cfgPath = filepath.Join(stateDir, "config.yaml")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *serverFlag != "" {
		cfg.ServerURL = *serverFlag
	}
	if *modelFlag != "" {
		cfg.Model = *modelFlag
	}
	if *listenFlag != "" {
		cfg.Listen = *listenFlag
	}

	client, err := analyze.NewClient(cfg.ServerURL, cfg.Timeout())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *healthFlag {
		runHealthMode(client, cfg.ServerURL)
		return
	}

	logger := applog.New(stateDir)
	defer logger.Sync()

	store := session.NewStore(stateDir)
	history := session.NewHistory(store)

	if *askFlag != "" {
		runAskMode(client, history, cfg.Model, *askFlag, *attachFlags, *jsonFlag)
		return
	}

	if *webFlag {
		srv := web.NewServer(client, history, cfg.Model, logger)
		if err := srv.ListenAndServe(cfg.Listen); err != nil {
			fmt.Fprintf(os.Stderr, "Web server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Default: TUI
	runTuiMode(tui.Deps{
		Client:      client,
		History:     history,
		Attachments: &session.AttachmentSet{},
		Notifier:    session.NewNotifier(),
		Store:       store,
		Log:         logger,
		ModelID:     cfg.Model,
	})
}

func runHealthMode(client *analyze.Client, serverURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Health(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Backend %s is unhealthy: %v\n", serverURL, err)
		os.Exit(1)
	}
	fmt.Printf("Backend %s is healthy\n", serverURL)
}

// runAskMode is the non-interactive path: one submission, sections printed
// to stdout, same history ledger as the TUI.
func runAskMode(client *analyze.Client, history *session.History, modelID, prompt string, paths []string, asJSON bool) {
	var files []model.Attachment
	for _, path := range paths {
		att, err := session.StatAttachment(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot attach %s: %v\n", path, err)
			os.Exit(1)
		}
		files = append(files, att)
	}

	resp, err := client.Analyze(context.Background(), analyze.Request{
		Prompt: prompt,
		Model:  modelID,
		Files:  files,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}

	sections := analyze.Parse(resp.Content)
	history.Record(prompt)

	if asJSON {
		out := struct {
			ModelUsed string            `json:"model_used"`
			Sections  map[string]string `json:"sections"`
			Order     []string          `json:"order"`
			Metrics   model.Metrics     `json:"metrics"`
		}{
			ModelUsed: resp.ModelUsed,
			Sections:  make(map[string]string),
			Order:     sections.Keys(),
			Metrics:   resp.Metrics.Indicators(),
		}
		for _, key := range sections.Keys() {
			out.Sections[key] = sections.Get(key)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(out)
		return
	}

	for _, key := range sections.Keys() {
		fmt.Printf("== %s ==\n\n%s\n\n", key, sections.Get(key))
	}
	metrics := resp.Metrics.Indicators()
	fmt.Printf("Quality: %s · Complexity: %s · Security: %s\n", metrics.Quality, metrics.Complexity, metrics.Security)
}

func runTuiMode(deps tui.Deps) {
	m := tui.NewModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
