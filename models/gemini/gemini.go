package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ub-intelligence/dharmabot/models"
)

const (
	defaultModel   = "gemini-2.5-flash"
	defaultBaseURL = "https://generativelanguage.googleapis.com"
)

// Client is a typed client for the generative-language REST API.
type Client struct {
	Model   string
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a client with the default model and a 2-minute timeout.
func NewClient(apiKey string) *Client {
	return &Client{
		Model:   defaultModel,
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 2 * time.Minute},
	}
}

// Converse submits the assembled content blocks and returns the normalized
// response. Policy-level failures (blocked, interrupted, empty) come back
// as a normal AIResponse whose Text explains the condition; only transport
// failures return an error.
func (c *Client) Converse(ctx context.Context, contents []models.Content, cfg models.InferenceConfig) (models.AIResponse, error) {
	if len(contents) == 0 {
		return models.AIResponse{}, fmt.Errorf("cannot create request with no content")
	}

	body := requestBody{Contents: contents}
	if cfg.SearchEnabled {
		body.Tools = []requestTool{{GoogleSearch: &googleSearchTool{}}}
	} else {
		instruction := cfg.SystemInstruction
		if instruction == "" {
			instruction = BaseSystemInstruction
		}
		body.SystemInstruction = &systemInstruction{Parts: []systemPart{{Text: instruction}}}
		body.GenerationConfig = &generationConfig{Temperature: 0.7, TopP: 0.95}
	}

	resp, err := c.generateContent(ctx, body)
	if err != nil {
		return models.AIResponse{}, err
	}
	return normalizeResponse(resp), nil
}

// DraftDocument generates a legal document draft from user instructions.
func (c *Client) DraftDocument(ctx context.Context, instructions string) (models.AIResponse, error) {
	contents := []models.Content{models.TextContent(models.ContentRoleUser, instructions)}
	return c.Converse(ctx, contents, models.InferenceConfig{SystemInstruction: draftingInstruction})
}

// DeepResearch answers a research query with web grounding always on.
func (c *Client) DeepResearch(ctx context.Context, query string) (models.AIResponse, error) {
	contents := []models.Content{models.TextContent(models.ContentRoleUser, query)}
	return c.Converse(ctx, contents, models.InferenceConfig{SearchEnabled: true})
}

// PolishNote rewrites a raw dictation transcript into a structured legal
// note and suggests a title from the note's leading heading.
func (c *Client) PolishNote(ctx context.Context, rawTranscript string) (models.AIResponse, error) {
	contents := []models.Content{models.TextContent(models.ContentRoleUser, rawTranscript)}
	resp, err := c.Converse(ctx, contents, models.InferenceConfig{SystemInstruction: polishInstruction})
	if err != nil {
		return models.AIResponse{}, err
	}
	resp.SuggestedTitle = suggestedTitleFrom(resp.Text)
	return resp, nil
}

func (c *Client) generateContent(ctx context.Context, body requestBody) (geminiResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return geminiResponse{}, fmt.Errorf("failed to marshal request body: %w", err)
	}

	model := c.Model
	if model == "" {
		model = defaultModel
	}
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", baseURL, model, c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return geminiResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return geminiResponse{}, fmt.Errorf("error making POST request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return geminiResponse{}, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var response geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return geminiResponse{}, fmt.Errorf("error unmarshalling response: %w", err)
	}
	return response, nil
}

// normalizeResponse maps the wire response into an AIResponse, converting
// policy failures into explanatory text.
func normalizeResponse(resp geminiResponse) models.AIResponse {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return models.AIResponse{
			Text: fmt.Sprintf("The request was blocked by the content policy. Reason: %s. Please rephrase your query.", resp.PromptFeedback.BlockReason),
		}
	}

	if len(resp.Candidates) == 0 {
		return models.AIResponse{Text: "The AI returned an empty response. Please try again."}
	}

	cand := resp.Candidates[0]

	var b strings.Builder
	for _, part := range cand.Content.Parts {
		b.WriteString(part.Text)
	}
	text := b.String()

	if text == "" {
		switch cand.FinishReason {
		case "", "STOP", "MAX_TOKENS":
			return models.AIResponse{Text: "The AI returned an empty response. Please try again."}
		default:
			return models.AIResponse{
				Text: fmt.Sprintf("AI response generation was interrupted. Reason: %s.", cand.FinishReason),
			}
		}
	}

	// Grounding chunks are kept in API order, never re-sorted.
	var sources []models.GroundingChunk
	if cand.GroundingMetadata != nil {
		for _, gc := range cand.GroundingMetadata.GroundingChunks {
			if gc.Web == nil || gc.Web.URI == "" {
				continue
			}
			sources = append(sources, models.GroundingChunk{
				Web: models.WebSource{URI: gc.Web.URI, Title: gc.Web.Title},
			})
		}
	}

	return models.AIResponse{Text: text, Sources: sources}
}

// suggestedTitleFrom extracts the first markdown heading as a note title.
func suggestedTitleFrom(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			return strings.TrimSpace(strings.TrimLeft(trimmed, "# "))
		}
	}
	return "Legal Consultation Notes"
}
