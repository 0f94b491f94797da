// Package gemini implements the llm oracle against the Gemini HTTP API
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	perr "inkwell/internal/platform/errors"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Config configures the Gemini client
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // defaults to the public endpoint
	Timeout time.Duration
}

// Client calls Gemini generateContent over plain HTTP
type Client struct {
	cfg  Config
	http *http.Client
}

// New constructs a Client. A zero Timeout defaults to 20s
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 20 * time.Second
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}
}

type request struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type response struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Complete implements llm.Oracle
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" || c.cfg.Model == "" {
		return "", perr.Oraclef("gemini api key and model are required")
	}

	payload, err := json.Marshal(request{Contents: []content{{Parts: []part{{Text: prompt}}}}})
	if err != nil {
		return "", perr.OracleWrap(err, "marshal gemini request")
	}

	url := c.cfg.BaseURL + "/" + c.cfg.Model + ":generateContent?key=" + c.cfg.APIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", perr.OracleWrap(err, "build gemini request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", perr.OracleWrap(err, "call gemini")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", perr.Oraclef("gemini status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", perr.OracleWrap(err, "decode gemini response")
	}

	text, err := extractText(parsed)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func extractText(resp response) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", perr.Oraclef("gemini response missing candidates")
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", perr.Oraclef("gemini response missing content parts")
	}
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Text)
	}
	return b.String(), nil
}
