package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ZaguanLabs/lingua"
)

// OpenAITranslator implements lingua.Translator using OpenAI's API. A remote
// engine needs no warm-up, so IsReady always reports true and Prepare
// short-circuits to Ready.
type OpenAITranslator struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI translator.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key (uses OPENAI_API_KEY env var if empty)
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAITranslator creates a new OpenAI-backed translator.
func NewOpenAITranslator(cfg OpenAIConfig) *OpenAITranslator {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAITranslator{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate translates one text using OpenAI.
func (t *OpenAITranslator) Translate(ctx context.Context, text, sourceLang, targetLang string, tc lingua.TextContext) (string, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildSystemPrompt(sourceLang, targetLang, tc)},
			{Role: openai.ChatMessageRoleUser, Content: buildUserMessage(text)},
		},
		Temperature: t.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", &lingua.EngineError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &lingua.EngineError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return parseResponse(resp.Choices[0].Message.Content)
}

// IsReady always reports true; a remote engine serves any pair it supports
// without local assets.
func (t *OpenAITranslator) IsReady(ctx context.Context, sourceLang, targetLang string) (bool, error) {
	return true, nil
}

// Prepare needs no warm-up and returns Ready immediately.
func (t *OpenAITranslator) Prepare(ctx context.Context, sourceLang, targetLang string) (lingua.PrepareResult, error) {
	return lingua.ReadyResult(), nil
}

// Close releases nothing; the HTTP client holds no persistent resources.
func (t *OpenAITranslator) Close() error {
	return nil
}

// contextHints describe each text provenance for the prompt.
var contextHints = map[lingua.TextContext]string{
	lingua.ContextUI:          "The text is a user-interface label. Keep it short and conventional for UI copy.",
	lingua.ContextBackend:     "The text originates from a backend payload.",
	lingua.ContextUserContent: "The text is user-authored content. Preserve its register and intent.",
	lingua.ContextSystem:      "The text is a system message (error, notification). Keep it precise.",
}

func buildSystemPrompt(sourceLang, targetLang string, tc lingua.TextContext) string {
	sourceName := lingua.LanguageName(sourceLang)
	targetName := lingua.LanguageName(targetLang)

	contextText := "The content is general application text."
	if hint, ok := contextHints[tc]; ok {
		contextText = hint
	}

	return fmt.Sprintf(`# Role
You are an expert native translator. You translate %s content into %s with the fluency of a highly educated native speaker.

# Context
%s

# Style Guide
- **Natural Flow**: Avoid literal translations; rephrase so the result sounds native.
- **Opaque Tokens**: The text may contain opaque tokens (bracketed markers such as PH0, PH1). Reproduce every token EXACTLY as it appears, character for character. Never translate, reorder-split, duplicate, or drop a token.
- **Interpolation**: Do NOT translate variables or placeholders of any kind.
- **Formatting**: Preserve meaningful whitespace and use idiomatic punctuation for the target language.

# Format
Return a valid JSON object with a single key "translation" containing the translated string.
Example: { "translation": "translated text" }
Do NOT wrap the response in Markdown code blocks.`, sourceName, targetName, contextText)
}

func buildUserMessage(text string) string {
	data, _ := json.Marshal(map[string]string{"text": text})
	return string(data)
}

func parseResponse(content string) (string, error) {
	var result map[string]string
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &result); err != nil {
		return "", &lingua.EngineError{
			Message:   "malformed response from OpenAI",
			Cause:     err,
			Retryable: true,
		}
	}

	translation, ok := result["translation"]
	if !ok {
		// Fallback: accept any single string value
		for _, v := range result {
			translation = v
			ok = true
			break
		}
	}
	if !ok {
		return "", &lingua.EngineError{
			Message:   "response missing translation",
			Retryable: true,
		}
	}
	return translation, nil
}

// isRetryableError classifies OpenAI API errors: rate limits and server-side
// failures may be retried, client errors may not.
func isRetryableError(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	// Network-level failures are worth retrying.
	return true
}

// Verify OpenAITranslator implements the contract.
var _ lingua.Translator = (*OpenAITranslator)(nil)
