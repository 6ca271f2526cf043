// Package analyze talks to the remote analysis backend and turns its
// combined markdown reply into named sections.
//
// The wire contract: POST {base}/analyze with multipart form fields
// "prompt" and "model" plus zero or more "files" parts; the backend
// answers {"content": ..., "model_used": ..., "metrics": {...}} on
// success and {"error": ...} with a 4xx/5xx status otherwise.
package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/AdvaitK2607/genai-codeassistant/internal/model"
)

// DefaultTimeout bounds a single analysis round-trip. Generation is slow,
// so this is much longer than a typical API call.
const DefaultTimeout = 120 * time.Second

// ErrMissingContent is returned when the backend answers 2xx but the
// payload has no usable content field. Treated the same as a transport
// failure by callers.
var ErrMissingContent = errors.New("analysis response has no content")

// StatusError is returned for non-2xx responses. Message carries the
// server-supplied error text when the body had one, so the UI can show
// something better than a bare status code.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// Client is an HTTP client for the analysis backend.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the given base URL ("http://host:port").
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("analysis client requires a base URL")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Request is one outbound analysis submission.
type Request struct {
	Prompt string
	Model  string
	Files  []model.Attachment
}

// Response is the backend's reply.
type Response struct {
	Content   string   `json:"content"`
	ModelUsed string   `json:"model_used"`
	Metrics   *Metrics `json:"metrics"`
}

// Metrics mirrors the backend's indicator block. Values are usually
// strings but some deployments emit bare numbers, so decoding tolerates
// both.
type Metrics struct {
	Quality    flexString `json:"quality"`
	Complexity flexString `json:"complexity"`
	Security   flexString `json:"security"`
}

// Indicators converts to the display form, substituting the placeholder
// for anything absent.
func (m *Metrics) Indicators() model.Metrics {
	out := model.PlaceholderMetrics()
	if m == nil {
		return out
	}
	if m.Quality != "" {
		out.Quality = string(m.Quality)
	}
	if m.Complexity != "" {
		out.Complexity = string(m.Complexity)
	}
	if m.Security != "" {
		out.Security = string(m.Security)
	}
	return out
}

// flexString decodes a JSON string or number into a string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// Analyze submits the prompt and staged files and returns the combined
// reply. It is called exactly once per submission — no retry, matching the
// interactive flow it serves: a failed analysis is reported, not repeated.
func (c *Client) Analyze(ctx context.Context, req Request) (*Response, error) {
	body, contentType, err := encodeForm(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Message: serverMessage(data)}
	}

	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if strings.TrimSpace(out.Content) == "" {
		return nil, ErrMissingContent
	}
	return &out, nil
}

// Health pings GET /health and returns nil when the backend is reachable
// and reports ok.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode, Message: serverMessage(data)}
	}
	return nil
}

// encodeForm builds the multipart body. Attachment contents are read at
// submit time, so a file deleted after staging fails the submission rather
// than sending a stale copy.
func encodeForm(req Request) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("prompt", req.Prompt); err != nil {
		return nil, "", fmt.Errorf("encode prompt: %w", err)
	}
	if err := w.WriteField("model", req.Model); err != nil {
		return nil, "", fmt.Errorf("encode model: %w", err)
	}

	for _, att := range req.Files {
		part, err := w.CreateFormFile("files", att.Name)
		if err != nil {
			return nil, "", fmt.Errorf("attach %s: %w", att.Name, err)
		}
		f, err := os.Open(att.Path)
		if err != nil {
			return nil, "", fmt.Errorf("attach %s: %w", att.Name, err)
		}
		_, err = io.Copy(part, f)
		f.Close()
		if err != nil {
			return nil, "", fmt.Errorf("attach %s: %w", att.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// serverMessage extracts the "error" field from an error body, if the body
// is JSON at all.
func serverMessage(data []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil {
		return payload.Error
	}
	return ""
}
