// Package client provides an HTTP client for the hotelbot server, used by
// the CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/raphaelgruber/hotelbot-go/internal/models"
)

// Client talks to the hotelbot HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client. If baseURL is empty, uses HOTELBOT_SERVER_URL or
// defaults to localhost:5000. Timeout is configurable via
// HOTELBOT_CLIENT_TIMEOUT.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("HOTELBOT_SERVER_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	timeout := 30 * time.Second
	if t := os.Getenv("HOTELBOT_CLIENT_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ChatReply is the server's answer to one message.
type ChatReply struct {
	Reply     string `json:"reply"`
	Language  string `json:"language"`
	Timestamp string `json:"timestamp"`
	SessionID string `json:"session_id"`
	Error     string `json:"error,omitempty"`
}

// HistoryResult wraps the history endpoint response.
type HistoryResult struct {
	History []models.Turn `json:"history"`
	Count   int           `json:"count"`
}

// StatsResult wraps the stats endpoint response.
type StatsResult struct {
	Statistics  models.Statistics `json:"statistics"`
	GeneratedAt string            `json:"generated_at"`
}

// SearchResult wraps the search endpoint response.
type SearchResult struct {
	Results []models.Turn `json:"results"`
	Count   int           `json:"count"`
	Keyword string        `json:"keyword"`
}

// PurgeResult wraps the purge endpoint response.
type PurgeResult struct {
	Deleted int64 `json:"deleted"`
	Days    int   `json:"days"`
}

// Chat sends one message. sessionID may be empty; the reply carries the id
// the server assigned, which callers resend to keep a session together.
func (c *Client) Chat(ctx context.Context, message, sessionID string) (*ChatReply, error) {
	body, err := json.Marshal(map[string]string{
		"message":    message,
		"session_id": sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var reply ChatReply
	if err := c.do(req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// History fetches the most recent turns.
func (c *Client) History(ctx context.Context, limit int) (*HistoryResult, error) {
	var out HistoryResult
	if err := c.get(ctx, "/api/history", url.Values{"limit": {strconv.Itoa(limit)}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats fetches aggregate usage statistics.
func (c *Client) Stats(ctx context.Context) (*StatsResult, error) {
	var out StatsResult
	if err := c.get(ctx, "/api/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search fetches turns containing keyword.
func (c *Client) Search(ctx context.Context, keyword string, limit int) (*SearchResult, error) {
	var out SearchResult
	vals := url.Values{"q": {keyword}, "limit": {strconv.Itoa(limit)}}
	if err := c.get(ctx, "/api/search", vals, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Purge deletes turns older than days days.
func (c *Client) Purge(ctx context.Context, days int) (*PurgeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/api/purge?days=%d", c.baseURL, days), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	var out PurgeResult
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DialChat opens a websocket chat session. The returned conn speaks
// {"message": ...} requests and ChatReply responses; the caller closes it.
func (c *Client) DialChat(ctx context.Context, sessionID string) (*websocket.Conn, error) {
	wsURL := strings.Replace(c.baseURL, "http", "ws", 1) + "/ws"
	if sessionID != "" {
		wsURL += "?session_id=" + url.QueryEscape(sessionID)
	}
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", wsURL, err)
	}
	if resp != nil {
		_ = resp.Body.Close()
	}
	return conn, nil
}

func (c *Client) get(ctx context.Context, path string, vals url.Values, out any) error {
	u := c.baseURL + path
	if len(vals) > 0 {
		u += "?" + vals.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s - %s", resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
