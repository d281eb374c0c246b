package models

// VoiceNote is a stored dictation with its raw transcript and the polished
// markdown rendering. Audio itself is referenced, never embedded.
type VoiceNote struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	RawTranscript        string `json:"rawTranscript"`
	PolishedNoteMarkdown string `json:"polishedNoteMarkdown"`
	AudioURI             string `json:"audioBlobURL,omitempty"`
	AudioMimeType        string `json:"audioMimeType,omitempty"`
	DurationSeconds      int    `json:"durationSeconds"`
	CreatedAt            int64  `json:"createdAt"`
	UpdatedAt            int64  `json:"updatedAt"`
}
