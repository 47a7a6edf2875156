// Package insight talks to the external text-generation service that
// produces roast messages and reports. The engine treats it as an opaque
// generateText function: fallible, no retry, and every caller substitutes
// a canned fallback on failure. Nothing returned here ever feeds back
// into ledger or progression state.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Mjlc31/EASYDAY/internal/analytics"
)

const chatEndpoint = "/v1/chat/completions"

// Fixed fallback strings shown when the service is unreachable or errors.
const (
	FallbackRoast  = "The AI refuses to analyze this much mediocrity."
	FallbackReport = "Could not generate your report. Maybe your week was so irrelevant even the data gave up."
	FallbackTiming = "Your routine is so chaotic it crashed my analysis."

	// InsufficientData is returned without a request when there is
	// nothing to judge.
	InsufficientData = "Not enough data to judge your routine yet. Get to work."
)

type Client struct {
	baseURL string
	apiKey  string
	model   string
	hc      *http.Client
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		hc:      &http.Client{Timeout: 30 * time.Second},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Stream      bool      `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// RoastContext is the structured input for a productivity roast.
type RoastContext struct {
	Pending        int
	UrgentPending  int
	CompletedToday int
	Streak         int
}

func (c *Client) Roast(ctx context.Context, rc RoastContext) (string, error) {
	prompt := fmt.Sprintf(`Act as a ruthless productivity mentor. Look at this user's "productivity" and give BRUTAL, short feedback (max 20 words).
No soft words. No mediocre congratulations. If the user is failing, destroy their excuses. If they are doing fine, say it is the bare minimum.

Data:
- Pending tasks: %d
- Piled-up urgencies (Q1): %d
- Done today: %d
- Streak: %d

Tone examples:
"You are not tired, you are bored of your own failure."
"Congrats on doing the basics. Want a cookie?"`,
		rc.Pending, rc.UrgentPending, rc.CompletedToday, rc.Streak)

	return c.generate(ctx, prompt, 1.0, 60)
}

func (c *Client) WeeklyReport(ctx context.Context, history []analytics.DaySummary) (string, error) {
	days := ""
	for i, h := range history {
		if i >= 7 {
			break
		}
		days += fmt.Sprintf("%s: %d/%d done.\n", h.Date, h.Completed, h.Total)
	}

	prompt := fmt.Sprintf(`Act as a merciless mentor. Analyze the user's week.

Last days:
%s
Write a short, direct, painful report.
Open with one hard-hitting line about the overall performance.
Then call out specific bad days.

Example:
"Monday you won. Tuesday you survived. Wednesday you were a coward and ran from your obligations.
Try again, or keep pretending you work?"`, days)

	return c.generate(ctx, prompt, 0.8, 150)
}

func (c *Client) TimingInsight(ctx context.Context, d analytics.TimeOfDay) (string, error) {
	if d.Total() < 1 {
		return InsufficientData, nil
	}

	prompt := fmt.Sprintf(`Act as a ruthless productivity mentor. The user asked for an analysis of when they get things done.

Data:
- Morning (05h-12h): %d tasks
- Afternoon (12h-18h): %d tasks
- Night (18h-05h): %d tasks

Identify the pattern and judge it aggressively.
If nocturnal: "You think you are Batman, or did you just procrastinate all day?"
If afternoon: "The classic schedule of someone who wakes up late and pretends to produce."
If morning: "Started well. Did you keep it up? Doubt it."

SHORT answer (max 20 words). BRUTAL.`,
		d.Morning, d.Afternoon, d.Night)

	return c.generate(ctx, prompt, 1.0, 60)
}

func (c *Client) generate(ctx context.Context, prompt string, temp float64, maxTokens int) (string, error) {
	payload := chatRequest{
		Model:       c.model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: temp,
		MaxTokens:   maxTokens,
		Stream:      false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("text generation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("text generation status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("text generation returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}
