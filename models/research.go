package models

// SavedResearch is a stored deep-research result.
type SavedResearch struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Query     string           `json:"query"`
	Results   string           `json:"results"`
	Citations []GroundingChunk `json:"citations"`
	Timestamp int64            `json:"timestamp"`
}
