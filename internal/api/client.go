// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the personal assistant service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jeranaias/aichat-tui/internal/model"
)

// Configuration constants for the assistant service API.
const (
	// DefaultBaseURL is the base URL of a locally run assistant service.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	MaxResponseSize = 4 * 1024 * 1024 // 4MB limit
)

// Error variables for common API failures.
var (
	// ErrInvalidCredentials indicates the server rejected a login.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrSessionNotFound indicates the server does not know the session.
	ErrSessionNotFound = errors.New("session not found")
)

// =============================================================================
// ERROR TYPE
// =============================================================================

// Error represents a failure reported by the assistant service.
type Error struct {
	Status  int    // HTTP status code, 0 when the request never completed
	Message string // Server-provided detail, or a transport error string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("assistant API error (HTTP %d): %s", e.Status, e.Message)
	}
	return "assistant API error: " + e.Message
}

// IsNotFound reports whether err is an API failure for an absent resource.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrSessionNotFound) {
		return true
	}
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsAuthFailed reports whether err is a rejected login.
func IsAuthFailed(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// UserMessage returns the text the views should surface for err: the
// server's detail when one exists, otherwise the given fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrSessionNotFound) {
		return err.Error()
	}
	return fallback
}

// =============================================================================
// WIRE TYPES
// =============================================================================

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type sessionListResponse struct {
	Username string          `json:"username"`
	Sessions []model.Session `json:"sessions"`
}

type createSessionRequest struct {
	Username string `json:"username"`
}

type createSessionResponse struct {
	SessionID string `json:"session_id"`
}

type historyResponse struct {
	Messages []model.HistoryEntry `json:"messages"`
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Username  string `json:"username"`
	Message   string `json:"message"`
}

// detailResponse is the error body FastAPI-style services return.
type detailResponse struct {
	Detail string `json:"detail"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client is a client for the assistant service HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL. An empty baseURL
// falls back to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// WithTimeout overrides the request timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.httpClient.Timeout = d
	return c
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// AUTH OPERATIONS
// =============================================================================

// Login verifies credentials with the service. The service reports a
// rejected login as a 200 with an "Invalid Credentials" message rather
// than a 401, so the body is inspected as well as the status.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body, err := c.postJSON(ctx, "/auth/login", credentialsRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	var resp messageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return &Error{Message: "unexpected login response"}
	}
	if !strings.EqualFold(resp.Message, "Login Successful") {
		return ErrInvalidCredentials
	}
	return nil
}

// Signup registers a new account. It does not log the account in; the
// caller must follow with Login.
func (c *Client) Signup(ctx context.Context, username, password string) error {
	_, err := c.postJSON(ctx, "/auth/signup", credentialsRequest{
		Username: username,
		Password: password,
	})
	return err
}

// =============================================================================
// SESSION OPERATIONS
// =============================================================================

// ListSessions fetches every session owned by username. A user with no
// sessions yields an empty slice, not an error.
func (c *Client) ListSessions(ctx context.Context, username string) ([]model.Session, error) {
	body, err := c.get(ctx, "/session/"+url.PathEscape(username))
	if err != nil {
		return nil, err
	}

	var resp sessionListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &Error{Message: "unexpected session list response"}
	}
	return resp.Sessions, nil
}

// CreateSession asks the service for a fresh session and returns its
// server-assigned ID.
func (c *Client) CreateSession(ctx context.Context, username string) (string, error) {
	body, err := c.postJSON(ctx, "/session/", createSessionRequest{Username: username})
	if err != nil {
		return "", err
	}

	var resp createSessionResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.SessionID == "" {
		return "", &Error{Message: "unexpected create session response"}
	}
	return resp.SessionID, nil
}

// GetHistory fetches the message history for a session in server order.
// A session the server does not recognize yields ErrSessionNotFound.
func (c *Client) GetHistory(ctx context.Context, sessionID string) ([]model.HistoryEntry, error) {
	body, err := c.get(ctx, "/session/get/"+url.PathEscape(sessionID))
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var resp historyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &Error{Message: "unexpected history response"}
	}
	return resp.Messages, nil
}

// =============================================================================
// CHAT OPERATIONS
// =============================================================================

// SendMessage delivers one user message to a session and returns the
// assistant's reply. The reply body is plain text, not JSON.
func (c *Client) SendMessage(ctx context.Context, sessionID, username, text string) (string, error) {
	body, err := c.postJSON(ctx, "/chat/", chatRequest{
		SessionID: sessionID,
		Username:  username,
		Message:   text,
	})
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetFacts fetches the raw stored facts for a user. The shape is
// service-defined, so the decoded JSON is returned as-is.
func (c *Client) GetFacts(ctx context.Context, username string) (any, error) {
	body, err := c.get(ctx, "/chat/userfacts?username="+url.QueryEscape(username))
	if err != nil {
		return nil, err
	}

	var facts any
	if err := json.Unmarshal(body, &facts); err != nil {
		return nil, &Error{Message: "unexpected facts response"}
	}
	return facts, nil
}

// =============================================================================
// TRANSPORT HELPERS
// =============================================================================

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	return c.do(req)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	// Response size limit prevents memory exhaustion on a misbehaving server.
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Status: resp.StatusCode, Message: errorDetail(body, resp.StatusCode)}
	}
	return body, nil
}

// errorDetail extracts the service's detail message from an error body,
// falling back to the HTTP status text.
func errorDetail(body []byte, status int) string {
	var d detailResponse
	if err := json.Unmarshal(body, &d); err == nil && d.Detail != "" {
		return d.Detail
	}
	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") {
		return text
	}
	return http.StatusText(status)
}
