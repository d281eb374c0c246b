package models

// AIResponse is the normalized result of one inference call. Policy-level
// failures (blocked, interrupted, empty) are carried in Text so the chat
// can render them as a normal AI message; only transport failures surface
// as Go errors.
type AIResponse struct {
	Text           string           `json:"text"`
	Sources        []GroundingChunk `json:"sources,omitempty"`
	SuggestedTitle string           `json:"suggestedTitle,omitempty"`
}

// InferenceConfig controls a single inference call.
type InferenceConfig struct {
	// SearchEnabled requests web grounding. Search mode and instructed-
	// persona mode are mutually exclusive: when search is on, the system
	// instruction and sampling parameters are omitted from the request.
	SearchEnabled bool

	// SystemInstruction overrides the gateway's default instruction when
	// set. Ignored while SearchEnabled is true.
	SystemInstruction string
}
