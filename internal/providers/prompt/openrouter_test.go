package prompt

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/samson623/Prompt-Pro/internal/domain"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestOpenRouterGeneratorMissingKeyFallsBack(t *testing.T) {
	t.Parallel()
	var reason string
	gen := NewOpenRouterGenerator(OpenRouterOptions{
		OnFallback: func(r string, err error) { reason = r },
	})

	res, err := gen.GenerateQuestions(context.Background(), "Test", domain.EnhancementOptions{})
	if err != nil {
		t.Fatalf("GenerateQuestions returned error: %v", err)
	}
	if res.Provider != staticProviderName {
		t.Fatalf("Provider = %q, want %q", res.Provider, staticProviderName)
	}
	if reason != "missing_api_key" {
		t.Fatalf("fallback reason = %q, want missing_api_key", reason)
	}
	if len(res.Questions) != 3 {
		t.Fatalf("expected fallback question set, got %d questions", len(res.Questions))
	}
}

func TestOpenRouterGeneratorTransportErrorFallsBack(t *testing.T) {
	t.Parallel()
	var reason string
	gen := NewOpenRouterGenerator(OpenRouterOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return nil, errors.New("boom")
		})},
		OnFallback: func(r string, err error) { reason = r },
	})

	res, err := gen.EnhancePrompt(context.Background(), EnhanceRequest{OriginalPrompt: "Write a blog post"})
	if err != nil {
		t.Fatalf("EnhancePrompt returned error: %v", err)
	}
	if reason != "http_request" {
		t.Fatalf("fallback reason = %q, want http_request", reason)
	}
	if res.Provider != staticProviderName {
		t.Fatalf("Provider = %q, want %q", res.Provider, staticProviderName)
	}
	if !strings.Contains(res.Text, "Write a blog post") {
		t.Fatalf("fallback text missing original prompt: %q", res.Text)
	}
}

func TestOpenRouterGeneratorNonSuccessStatusFallsBack(t *testing.T) {
	t.Parallel()
	var reason string
	gen := NewOpenRouterGenerator(OpenRouterOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusTooManyRequests, `{"error":"rate limited"}`), nil
		})},
		OnFallback: func(r string, err error) { reason = r },
	})

	if _, err := gen.GenerateQuestions(context.Background(), "Test", domain.EnhancementOptions{}); err != nil {
		t.Fatalf("GenerateQuestions returned error: %v", err)
	}
	if reason != "http_429" {
		t.Fatalf("fallback reason = %q, want http_429", reason)
	}
}

func TestOpenRouterGeneratorMalformedQuestionsFallsBack(t *testing.T) {
	t.Parallel()
	var reason string
	gen := NewOpenRouterGenerator(OpenRouterOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"choices":[{"message":{"content":"not json at all"}}]}`), nil
		})},
		OnFallback: func(r string, err error) { reason = r },
	})

	res, err := gen.GenerateQuestions(context.Background(), "Test", domain.EnhancementOptions{})
	if err != nil {
		t.Fatalf("GenerateQuestions returned error: %v", err)
	}
	if reason != "parse_payload" {
		t.Fatalf("fallback reason = %q, want parse_payload", reason)
	}
	if res.Provider != staticProviderName {
		t.Fatalf("Provider = %q, want %q", res.Provider, staticProviderName)
	}
}

func TestOpenRouterGeneratorParsesQuestions(t *testing.T) {
	t.Parallel()
	content := `[{"id":"goal","question":"What is the goal?","type":"text"},{"id":"tone","question":"Which tone?","type":"multiple-choice","options":["Formal","Casual"]}]`
	body := `{"choices":[{"message":{"content":"` + strings.ReplaceAll(content, `"`, `\"`) + `"}}]}`
	gen := NewOpenRouterGenerator(OpenRouterOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if got := r.Header.Get("Authorization"); got != "Bearer dummy" {
				t.Fatalf("Authorization = %q", got)
			}
			return jsonResponse(http.StatusOK, body), nil
		})},
		OnFallback: func(r string, err error) {
			t.Fatalf("unexpected fallback: %s", r)
		},
	})

	res, err := gen.GenerateQuestions(context.Background(), "Test", domain.EnhancementOptions{})
	if err != nil {
		t.Fatalf("GenerateQuestions returned error: %v", err)
	}
	if res.Provider != openRouterProviderName {
		t.Fatalf("Provider = %q, want %q", res.Provider, openRouterProviderName)
	}
	if len(res.Questions) != 2 || res.Questions[1].ID != "tone" {
		t.Fatalf("unexpected questions: %+v", res.Questions)
	}
}

func TestOpenRouterGeneratorEnhanceUsesModelText(t *testing.T) {
	t.Parallel()
	gen := NewOpenRouterGenerator(OpenRouterOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"choices":[{"message":{"content":"  A much better prompt.  "}}]}`), nil
		})},
	})

	res, err := gen.EnhancePrompt(context.Background(), EnhanceRequest{OriginalPrompt: "Write a blog post"})
	if err != nil {
		t.Fatalf("EnhancePrompt returned error: %v", err)
	}
	if res.Text != "A much better prompt." {
		t.Fatalf("Text = %q", res.Text)
	}
	if res.Provider != openRouterProviderName {
		t.Fatalf("Provider = %q, want %q", res.Provider, openRouterProviderName)
	}
}
