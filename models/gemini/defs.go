package gemini

import "github.com/ub-intelligence/dharmabot/models"

type requestBody struct {
	Contents          []models.Content   `json:"contents"`
	Tools             []requestTool      `json:"tools,omitempty"`
	SystemInstruction *systemInstruction `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig  `json:"generationConfig,omitempty"`
}

// requestTool enables server-side tools. Only google_search is used; an
// empty object activates it.
type requestTool struct {
	GoogleSearch *googleSearchTool `json:"google_search,omitempty"`
}

type googleSearchTool struct{}

type systemInstruction struct {
	Parts []systemPart `json:"parts"`
}

type systemPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates     []candidate     `json:"candidates"`
	PromptFeedback *promptFeedback `json:"promptFeedback,omitempty"`
	ModelVersion   string          `json:"modelVersion,omitempty"`
}

type candidate struct {
	Content           candidateContent   `json:"content"`
	FinishReason      string             `json:"finishReason,omitempty"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

type candidateContent struct {
	Parts []candidatePart `json:"parts"`
	Role  string          `json:"role"`
}

type candidatePart struct {
	Text string `json:"text,omitempty"`
}

type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks,omitempty"`
}

type groundingChunk struct {
	Web *webChunk `json:"web,omitempty"`
}

type webChunk struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

type promptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}
