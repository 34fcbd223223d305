package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dreamtrip/internal/catalog"
	"dreamtrip/internal/config"
	"dreamtrip/internal/model"
	"dreamtrip/internal/utils"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrEmptyNarration is returned when the model produced no usable text
var ErrEmptyNarration = errors.New("no content generated")

// contentGenerator is the part of *genai.GenerativeModel the narrator uses
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiNarrator narrates recommendations with a Gemini model
type GeminiNarrator struct {
	client  *genai.Client
	model   contentGenerator
	timeout time.Duration
	enabled bool
}

// NewGeminiNarrator creates a narrator from cfg. A disabled config yields a
// narrator whose IsEnabled reports false and which never dials out.
func NewGeminiNarrator(ctx context.Context, cfg *config.GeminiConfig) (*GeminiNarrator, error) {
	if !cfg.Enabled {
		return &GeminiNarrator{}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	gm := client.GenerativeModel(cfg.Model)
	gm.SetTemperature(0.7)
	gm.SetTopP(0.95)
	gm.SetMaxOutputTokens(512)

	log.Printf("🔧 Gemini narrator using model %s", cfg.Model)

	return &GeminiNarrator{
		client:  client,
		model:   gm,
		timeout: time.Duration(cfg.Timeout) * time.Second,
		enabled: true,
	}, nil
}

// IsEnabled returns whether the narrator is configured and ready
func (g *GeminiNarrator) IsEnabled() bool {
	return g.enabled && g.model != nil
}

// Close releases the underlying client
func (g *GeminiNarrator) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// Narrate asks the model for a short personalised analysis
func (g *GeminiNarrator) Narrate(ctx context.Context, prefs *model.Preferences, m catalog.Model, draft string) (string, error) {
	if !g.IsEnabled() {
		return "", errors.New("gemini narrator is disabled")
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(buildNarrationPrompt(prefs, m, draft)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := responseText(resp)

	var out struct {
		Analysis string `json:"analysis"`
	}
	if err := utils.ParseModelJSON(text, &out); err == nil {
		text = out.Analysis
	}
	text = utils.StripMarkdown(text)

	if text == "" {
		return "", ErrEmptyNarration
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range c.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return strings.TrimSpace(b.String())
}

func buildNarrationPrompt(prefs *model.Preferences, m catalog.Model, draft string) string {
	var usage, lifestyle, location, budget string
	if prefs != nil {
		usage = prefs.Usage
		lifestyle = prefs.Lifestyle
		location = prefs.Location
		budget = prefs.Budget.Text()
	}

	return fmt.Sprintf(`You are a friendly Toyota sales advisor. A shopper answered a short questionnaire and was matched with the %s (%s, starting at $%.0f).

Shopper answers:
- lifestyle: %s
- usage: %s
- location: %s
- budget: %s

Explain in at most three sentences why the %s suits them. Mention no prices other than the one given.
Respond with JSON only, in the form {"analysis": "<your explanation>"}.

Reference explanation:
%s`,
		m.Name, m.VehicleType, m.Price,
		orDefault(lifestyle, "not given"),
		orDefault(usage, "not given"),
		orDefault(location, "not given"),
		orDefault(budget, "not given"),
		m.Name, draft)
}
