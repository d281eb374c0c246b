package voicenotes

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/ub-intelligence/dharmabot/models"
	"github.com/ub-intelligence/dharmabot/stores"
)

const transcriptionModel = "gemini-2.5-flash"

// Polisher rewrites a raw transcript into a structured note with a
// suggested title.
type Polisher interface {
	PolishNote(ctx context.Context, rawTranscript string) (models.AIResponse, error)
}

// Transcriber converts recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioData []byte, mimeType string) (string, error)
}

// GenAITranscriber transcribes audio through the Gemini SDK with inline
// audio data.
type GenAITranscriber struct {
	Model string
}

// NewGenAITranscriber creates a transcriber on the default model. The SDK
// client reads GEMINI_API_KEY from the environment.
func NewGenAITranscriber() *GenAITranscriber {
	return &GenAITranscriber{Model: transcriptionModel}
}

// Transcribe sends the audio inline and returns the plain transcript.
func (t *GenAITranscriber) Transcribe(ctx context.Context, audioData []byte, mimeType string) (string, error) {
	if len(audioData) == 0 {
		return "", fmt.Errorf("no audio data to transcribe")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := t.Model
	if model == "" {
		model = transcriptionModel
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText("Transcribe this audio recording verbatim. Return only the transcript text."),
			genai.NewPartFromBytes(audioData, mimeType),
		}, genai.RoleUser),
	}

	result, err := client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("no transcript in response")
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	transcript := strings.TrimSpace(b.String())
	if transcript == "" {
		return "", fmt.Errorf("empty transcript in response")
	}
	return transcript, nil
}

// Service records dictations: transcribe, polish and manage the saved
// note collection.
type Service struct {
	transcriber Transcriber
	polisher    Polisher
	store       *stores.VoiceNoteStore
	logger      *log.Logger
}

// NewService creates a voice-note service
func NewService(transcriber Transcriber, polisher Polisher, store *stores.VoiceNoteStore) *Service {
	return &Service{
		transcriber: transcriber,
		polisher:    polisher,
		store:       store,
		logger:      log.New(os.Stdout, "[VOICENOTES] ", log.LstdFlags),
	}
}

// ProcessRecording transcribes the audio and polishes the transcript into
// a note. A polish failure keeps the raw transcript and falls back to the
// default title; a transcription failure fails the whole call.
func (s *Service) ProcessRecording(ctx context.Context, audioData []byte, mimeType string, durationSeconds int) (models.VoiceNote, error) {
	transcript, err := s.transcriber.Transcribe(ctx, audioData, mimeType)
	if err != nil {
		return models.VoiceNote{}, fmt.Errorf("transcription failed: %w", err)
	}

	note := models.VoiceNote{
		ID:              uuid.NewString(),
		Title:           "Untitled Note",
		RawTranscript:   transcript,
		AudioMimeType:   mimeType,
		DurationSeconds: durationSeconds,
		CreatedAt:       models.NowMillis(),
		UpdatedAt:       models.NowMillis(),
	}

	polished, err := s.polisher.PolishNote(ctx, transcript)
	if err != nil {
		s.logger.Printf("Polishing failed, keeping raw transcript: %v", err)
		return note, nil
	}
	note.PolishedNoteMarkdown = polished.Text
	if polished.SuggestedTitle != "" {
		note.Title = polished.SuggestedTitle
	}
	return note, nil
}

// Save upserts the note, refreshing UpdatedAt and preserving CreatedAt for
// existing notes. Notes with neither transcript nor polished text are
// rejected.
func (s *Service) Save(note models.VoiceNote) (models.VoiceNote, error) {
	if strings.TrimSpace(note.RawTranscript) == "" && strings.TrimSpace(note.PolishedNoteMarkdown) == "" {
		return note, fmt.Errorf("cannot save empty note")
	}
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	if note.Title == "" {
		note.Title = "Untitled Note"
	}
	if note.CreatedAt == 0 {
		note.CreatedAt = models.NowMillis()
	}
	note.UpdatedAt = models.NowMillis()

	if err := s.store.Save(note); err != nil {
		s.logger.Printf("Failed to save note %s: %v", note.ID, err)
		return note, err
	}
	return note, nil
}

// List returns saved notes, most recently updated first.
func (s *Service) List() []models.VoiceNote {
	notes, err := s.store.ListAll()
	if err != nil {
		s.logger.Printf("Listing voice notes degraded to empty: %v", err)
	}
	return notes
}

// Delete removes a note; absent ids are a no-op.
func (s *Service) Delete(id string) error {
	return s.store.Delete(id)
}
