package aiinsight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/akshara-fonts/akshara/internal/pkg/env"
)

const (
	defaultGeminiAPIBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel      = "gemini-3-flash-preview"

	// FallbackInsight is returned whenever the upstream call fails. The
	// feature is advisory; callers never see an upstream error.
	FallbackInsight = "This pairing provides a harmonious balance between traditional Devanagari forms and modern Latin geometry, ensuring seamless bilingual readability."

	// Per-caller ceiling, independent of the HTTP-level per-IP limiter
	// and of the upstream quota.
	callerWindow = time.Minute
	callerLimit  = 10
)

// ErrRateLimited is returned when a caller exceeds the per-caller ceiling.
var ErrRateLimited = errors.New("insight request ceiling exceeded")

// Client proxies pairing questions to a generative text service and
// degrades to a static sentence on any upstream failure.
type Client struct {
	APIKey     string
	APIBaseURL string
	Model      string

	HTTPClient *http.Client

	mu      sync.Mutex
	callers map[string][]time.Time
}

// NewClientFromEnv builds the insight client from GEMINI_* environment
// variables.
func NewClientFromEnv() *Client {
	return &Client{
		APIKey:     strings.TrimSpace(env.GetEnv("GEMINI_API_KEY", "")),
		APIBaseURL: strings.TrimRight(env.GetEnv("GEMINI_API_BASE_URL", defaultGeminiAPIBaseURL), "/"),
		Model:      strings.TrimSpace(env.GetEnv("GEMINI_MODEL", defaultGeminiModel)),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		callers: make(map[string][]time.Time),
	}
}

// GetInsight returns a short advisory text for a headline/body pairing.
// callerID scopes the request ceiling; everything except ErrRateLimited is
// absorbed into the fallback sentence.
func (c *Client) GetInsight(ctx context.Context, callerID, headlineFont, bodyFont string) (string, error) {
	if !c.allow(callerID) {
		return "", ErrRateLimited
	}

	text, err := c.generate(ctx, headlineFont, bodyFont)
	if err != nil {
		log.Warnf("[AIInsight] upstream failure, serving fallback: %v", err)
		return FallbackInsight, nil
	}
	return text, nil
}

func (c *Client) generate(ctx context.Context, headlineFont, bodyFont string) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is not configured")
	}

	prompt := fmt.Sprintf(
		"Explain why the typography pairing of %q and %q works for a bilingual Hindi-English website. Discuss stroke contrast and readability. Max 80 words.",
		headlineFont, bodyFont,
	)

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.APIBaseURL, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("insight request failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var raw struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", err
	}
	if len(raw.Candidates) == 0 || len(raw.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("insight response contained no candidates")
	}
	text := strings.TrimSpace(raw.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", errors.New("insight response text was empty")
	}
	return text, nil
}

// allow applies the per-caller sliding window.
func (c *Client) allow(callerID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.callers == nil {
		c.callers = make(map[string][]time.Time)
	}

	now := time.Now()
	cutoff := now.Add(-callerWindow)
	recent := c.callers[callerID][:0]
	for _, t := range c.callers[callerID] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) >= callerLimit {
		c.callers[callerID] = recent
		return false
	}
	c.callers[callerID] = append(recent, now)
	return true
}
