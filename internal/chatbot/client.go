// Package chatbot is a thin client for the remote Readle chatbot API. The
// collaborator is treated as opaque: any non-2xx response becomes an APIError
// carrying the HTTP status, surfaced to callers as a recoverable failure.
package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/readle-app/readle/internal/utils"
)

const defaultBaseURL = "http://localhost:8000"

// ResolveBaseURL picks the chatbot base URL: primary env var, then fallback
// env var, then the local default. A trailing slash is stripped.
func ResolveBaseURL() string {
	base := utils.FirstEnv(defaultBaseURL, "READLE_API_BASE_URL", "READLE_CHAT_API_URL")
	return strings.TrimSuffix(base, "/")
}

// APIError is a non-2xx response from the chatbot API.
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chatbot request failed: %s", e.Status)
}

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	Response       string   `json:"response"`
	SessionID      string   `json:"session_id"`
	SourcesUsed    bool     `json:"sources_used,omitempty"`
	RelevanceScore *float64 `json:"relevance_score,omitempty"`
	Reasoning      string   `json:"reasoning,omitempty"`
	ResponseType   string   `json:"response_type,omitempty"`
}

type HealthResponse struct {
	Status             string  `json:"status"`
	Service            string  `json:"service"`
	ActiveSessions     int     `json:"active_sessions"`
	RAGInitialized     bool    `json:"rag_initialized"`
	RelevanceThreshold float64 `json:"relevance_threshold"`
	RAGDisabled        string  `json:"rag_disabled,omitempty"`
	IncludePDFs        string  `json:"include_pdfs,omitempty"`
	ChromaDir          string  `json:"chroma_dir,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

func NewClientFromEnv(logger *zap.Logger) *Client {
	return NewClient(ResolveBaseURL(), logger)
}

func (c *Client) BaseURL() string { return c.baseURL }

// NewSession creates a fresh chat session.
func (c *Client) NewSession(ctx context.Context) (*CreateSessionResponse, error) {
	var out CreateSessionResponse
	if err := c.do(ctx, http.MethodPost, "/chat/session/new", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Send posts a message. The session id may be empty; the API will open a
// session and return its id.
func (c *Client) Send(ctx context.Context, message, sessionID string) (*ChatResponse, error) {
	body := map[string]any{"message": message}
	if sessionID != "" {
		body["session_id"] = sessionID
	}
	var out ChatResponse
	if err := c.do(ctx, http.MethodPost, "/chat", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClearSession deletes a chat session on the collaborator.
func (c *Client) ClearSession(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodDelete, "/chat/session/"+sessionID, nil, nil)
}

// Health fetches the collaborator's health report.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("chatbot request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("chatbot error response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
