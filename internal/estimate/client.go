// Package estimate turns free-text descriptions of meals and workouts into
// calorie and macro numbers via an OpenAI-compatible chat completion API.
package estimate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"calring/internal/model"
)

const (
	defaultModel   = "gpt-4o-mini"
	requestTimeout = 30 * time.Second
)

var (
	// ErrNoAPIKey indicates no API key is configured.
	ErrNoAPIKey = errors.New("estimate: no API key configured")
	// ErrEstimateRejected indicates the model's reply could not be used.
	ErrEstimateRejected = errors.New("estimate: response rejected")
)

const systemPrompt = `You are a nutrition and exercise estimator. The user describes a single meal or workout in free text. Reply with ONLY a JSON object, no prose, no code fences:

{"type": "meal" or "exercise", "name": "short label", "cals": number, "protein": number, "fiber": number, "sugar": number, "fat": number, "confidence": "low"|"medium"|"high"}

"cals" is kcal eaten for a meal or kcal burned for exercise. For exercise all macro fields are 0. If the user states body weight, use it when estimating exercise burn. Round cals to the nearest integer.`

// Result is a parsed, validated estimate.
type Result struct {
	Type       model.EntryType
	Name       string
	Cals       float64
	Protein    float64
	Fiber      float64
	Sugar      float64
	Fat        float64
	Confidence string
}

// Client estimates entries through a chat completion endpoint.
type Client struct {
	api   *openai.Client
	model string
	cache *Cache
}

// NewClient creates a client. Returns nil if the key is empty so callers can
// treat an unconfigured estimator as absent.
func NewClient(apiKey, modelName, baseURL string) *Client {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if modelName == "" {
		modelName = defaultModel
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: modelName,
		cache: NewCache(),
	}
}

// Estimate resolves a free-text description, plus the user's current weight
// for exercise burn, into a Result. Identical requests are served from the
// in-process cache.
func (c *Client) Estimate(ctx context.Context, text string, weightLbs float64) (Result, error) {
	if c == nil {
		return Result{}, ErrNoAPIKey
	}

	key := cacheKey(text, weightLbs)
	if r, ok := c.cache.Get(key); ok {
		return r, nil
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	userMsg := text
	if weightLbs > 0 {
		userMsg = fmt.Sprintf("%s\n\n(body weight: %.0f lbs)", text, weightLbs)
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMsg},
		},
		MaxTokens:   300,
		Temperature: 0.2,
	})
	if err != nil {
		return Result{}, fmt.Errorf("estimate: request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("%w: empty completion", ErrEstimateRejected)
	}

	result, err := parseResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return Result{}, err
	}

	c.cache.Put(key, result)
	return result, nil
}

// rawEstimate tolerates number-or-string values for every numeric field;
// models drift on this even with a strict prompt.
type rawEstimate struct {
	Type       string          `json:"type"`
	Name       string          `json:"name"`
	Cals       json.RawMessage `json:"cals"`
	Protein    json.RawMessage `json:"protein"`
	Fiber      json.RawMessage `json:"fiber"`
	Sugar      json.RawMessage `json:"sugar"`
	Fat        json.RawMessage `json:"fat"`
	Confidence string          `json:"confidence"`
}

// parseResponse extracts and validates the JSON object from a completion.
func parseResponse(content string) (Result, error) {
	content = stripFences(content)

	// Some models wrap the object in prose despite instructions; take the
	// outermost braces.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return Result{}, fmt.Errorf("%w: no JSON object in reply", ErrEstimateRejected)
	}

	var raw rawEstimate
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrEstimateRejected, err)
	}

	cals, ok := parseNumber(raw.Cals)
	if !ok || cals < 0 {
		return Result{}, fmt.Errorf("%w: missing or negative cals", ErrEstimateRejected)
	}

	r := Result{
		Name:       strings.TrimSpace(raw.Name),
		Cals:       cals,
		Confidence: strings.ToLower(strings.TrimSpace(raw.Confidence)),
	}

	switch strings.ToLower(strings.TrimSpace(raw.Type)) {
	case "exercise", "workout":
		r.Type = model.Exercise
	default:
		r.Type = model.Meal
	}

	// Macros are best effort: an unparseable field degrades to zero rather
	// than rejecting a usable calorie estimate.
	if r.Type == model.Meal {
		r.Protein, _ = parseNumber(raw.Protein)
		r.Fiber, _ = parseNumber(raw.Fiber)
		r.Sugar, _ = parseNumber(raw.Sugar)
		r.Fat, _ = parseNumber(raw.Fat)
		r.Protein = nonNegative(r.Protein)
		r.Fiber = nonNegative(r.Fiber)
		r.Sugar = nonNegative(r.Sugar)
		r.Fat = nonNegative(r.Fat)
	}

	return r, nil
}

// parseNumber defensively parses a polymorphic numeric field. Handles JSON
// numbers and strings like "450" or "450 kcal".
func parseNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if i := strings.IndexFunc(s, func(r rune) bool {
			return (r < '0' || r > '9') && r != '.' && r != '-'
		}); i > 0 {
			s = s[:i]
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v, true
		}
	}

	return 0, false
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func nonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
