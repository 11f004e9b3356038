package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samson623/Prompt-Pro/internal/domain"
)

// OpenRouterOptions configures the OpenRouter-backed generator.
type OpenRouterOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	Fallback   Generator
	OnFallback func(reason string, err error)
}

// OpenRouterGenerator calls the OpenRouter chat-completions API with a single
// bounded, non-retried attempt per operation. Any failure along the way
// (missing key, transport error, non-2xx status, malformed body, payload that
// does not validate) is absorbed into the deterministic fallback; the
// external error never reaches the caller.
type OpenRouterGenerator struct {
	apiKey     string
	model      string
	baseURL    string
	client     *http.Client
	fallback   Generator
	onFallback func(reason string, err error)
}

const (
	openRouterDefaultTimeout = 15 * time.Second
	defaultOpenRouterModel   = "mistralai/mistral-7b-instruct"
)

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewOpenRouterGenerator(opts OpenRouterOptions) *OpenRouterGenerator {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultOpenRouterModel
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: openRouterDefaultTimeout}
	}
	fallback := opts.Fallback
	if fallback == nil {
		fallback = NewStaticGenerator()
	}
	return &OpenRouterGenerator{
		apiKey:     strings.TrimSpace(opts.APIKey),
		model:      model,
		baseURL:    baseURL,
		client:     client,
		fallback:   fallback,
		onFallback: opts.OnFallback,
	}
}

func (o *OpenRouterGenerator) GenerateQuestions(ctx context.Context, originalPrompt string, opts domain.EnhancementOptions) (*QuestionsResult, error) {
	if o.apiKey == "" {
		return o.fallbackQuestions(ctx, originalPrompt, opts, "missing_api_key", nil)
	}
	payload := chatRequest{
		Model:       o.model,
		MaxTokens:   1000,
		Temperature: 0.7,
		Messages: []chatMessage{
			{Role: "system", Content: buildQuestionSystemMessage(opts)},
			{Role: "user", Content: fmt.Sprintf("Original prompt: %q\n\nGenerate clarifying questions to enhance this prompt.", originalPrompt)},
		},
	}
	text, reason, err := o.complete(ctx, payload)
	if err != nil {
		return o.fallbackQuestions(ctx, originalPrompt, opts, reason, err)
	}
	questions, err := parseQuestionPayload(text)
	if err != nil {
		return o.fallbackQuestions(ctx, originalPrompt, opts, "parse_payload", err)
	}
	return &QuestionsResult{Questions: questions, Provider: openRouterProviderName}, nil
}

func (o *OpenRouterGenerator) EnhancePrompt(ctx context.Context, req EnhanceRequest) (*EnhanceResult, error) {
	if o.apiKey == "" {
		return o.fallbackEnhance(ctx, req, "missing_api_key", nil)
	}
	payload := chatRequest{
		Model:       o.model,
		MaxTokens:   2000,
		Temperature: 0.3,
		Messages: []chatMessage{
			{Role: "system", Content: enhanceSystemMessage},
			{Role: "user", Content: buildEnhanceUserMessage(req)},
		},
	}
	text, reason, err := o.complete(ctx, payload)
	if err != nil {
		return o.fallbackEnhance(ctx, req, reason, err)
	}
	return &EnhanceResult{Text: strings.TrimSpace(text), Provider: openRouterProviderName}, nil
}

// complete performs one chat-completions round trip and returns the first
// choice's content. The reason string classifies the failure for fallback
// reporting.
func (o *OpenRouterGenerator) complete(ctx context.Context, payload chatRequest) (string, string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", "encode_request", err
	}
	endpoint := fmt.Sprintf("%s/chat/completions", o.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", "build_request", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", "http_request", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return "", fmt.Sprintf("http_%d", resp.StatusCode), fmt.Errorf("openrouter status %d", resp.StatusCode)
	}
	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", "decode_response", err
	}
	if len(out.Choices) == 0 {
		return "", "empty_choices", errors.New("no choices")
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", "empty_response", errors.New("empty response")
	}
	return text, "", nil
}

func (o *OpenRouterGenerator) fallbackQuestions(ctx context.Context, originalPrompt string, opts domain.EnhancementOptions, reason string, cause error) (*QuestionsResult, error) {
	o.emitFallback(reason, cause)
	res, err := o.fallback.GenerateQuestions(ctx, originalPrompt, opts)
	if res != nil && res.Provider == "" {
		res.Provider = staticProviderName
	}
	return res, err
}

func (o *OpenRouterGenerator) fallbackEnhance(ctx context.Context, req EnhanceRequest, reason string, cause error) (*EnhanceResult, error) {
	o.emitFallback(reason, cause)
	res, err := o.fallback.EnhancePrompt(ctx, req)
	if res != nil && res.Provider == "" {
		res.Provider = staticProviderName
	}
	return res, err
}

func (o *OpenRouterGenerator) emitFallback(reason string, err error) {
	if o.onFallback != nil {
		o.onFallback(reason, err)
	}
}

var _ Generator = (*OpenRouterGenerator)(nil)
