package voicenotes

import (
	"context"
	"errors"
	"testing"

	"github.com/ub-intelligence/dharmabot/models"
	"github.com/ub-intelligence/dharmabot/stores"
)

type fakeTranscriber struct {
	transcript string
	err        error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioData []byte, mimeType string) (string, error) {
	return f.transcript, f.err
}

type fakePolisher struct {
	resp models.AIResponse
	err  error
}

func (f *fakePolisher) PolishNote(ctx context.Context, rawTranscript string) (models.AIResponse, error) {
	return f.resp, f.err
}

func newTestService(t *fakeTranscriber, p *fakePolisher) *Service {
	return NewService(t, p, stores.NewVoiceNoteStore(stores.NewMemoryStore()))
}

func TestProcessRecording_TranscribesAndPolishes(t *testing.T) {
	s := newTestService(
		&fakeTranscriber{transcript: "client meeting about lease dispute"},
		&fakePolisher{resp: models.AIResponse{
			Text:           "# Lease Dispute Meeting\n\n- Key points",
			SuggestedTitle: "Lease Dispute Meeting",
		}},
	)

	note, err := s.ProcessRecording(context.Background(), []byte{1, 2, 3}, "audio/m4a", 42)
	if err != nil {
		t.Fatalf("ProcessRecording failed: %v", err)
	}
	if note.RawTranscript != "client meeting about lease dispute" {
		t.Errorf("Unexpected transcript: %q", note.RawTranscript)
	}
	if note.Title != "Lease Dispute Meeting" {
		t.Errorf("Suggested title should be applied, got %q", note.Title)
	}
	if note.PolishedNoteMarkdown == "" {
		t.Error("Polished markdown should be set")
	}
	if note.DurationSeconds != 42 || note.AudioMimeType != "audio/m4a" {
		t.Error("Recording metadata should carry through")
	}
}

func TestProcessRecording_TranscriptionFailureFails(t *testing.T) {
	s := newTestService(&fakeTranscriber{err: errors.New("bad audio")}, &fakePolisher{})
	if _, err := s.ProcessRecording(context.Background(), []byte{1}, "audio/m4a", 1); err == nil {
		t.Error("Transcription failure should fail the call")
	}
}

func TestProcessRecording_PolishFailureKeepsRawTranscript(t *testing.T) {
	s := newTestService(
		&fakeTranscriber{transcript: "raw words"},
		&fakePolisher{err: errors.New("model unavailable")},
	)

	note, err := s.ProcessRecording(context.Background(), []byte{1}, "audio/m4a", 5)
	if err != nil {
		t.Fatalf("Polish failure should not fail the recording: %v", err)
	}
	if note.RawTranscript != "raw words" {
		t.Errorf("Raw transcript should survive, got %q", note.RawTranscript)
	}
	if note.PolishedNoteMarkdown != "" {
		t.Error("Polished text should be empty after a polish failure")
	}
	if note.Title != "Untitled Note" {
		t.Errorf("Title should fall back, got %q", note.Title)
	}
}

func TestSave_RejectsEmptyNote(t *testing.T) {
	s := newTestService(&fakeTranscriber{}, &fakePolisher{})
	if _, err := s.Save(models.VoiceNote{Title: "just a title"}); err == nil {
		t.Error("A note without any content should be rejected")
	}
}

func TestSave_UpsertPreservesCreatedAt(t *testing.T) {
	s := newTestService(&fakeTranscriber{}, &fakePolisher{})

	saved, err := s.Save(models.VoiceNote{RawTranscript: "first version"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved.ID == "" || saved.CreatedAt == 0 {
		t.Fatal("Save should assign id and CreatedAt")
	}

	saved.RawTranscript = "second version"
	updated, err := s.Save(saved)
	if err != nil {
		t.Fatalf("Second save failed: %v", err)
	}
	if updated.CreatedAt != saved.CreatedAt {
		t.Error("Upsert must preserve CreatedAt")
	}

	notes := s.List()
	if len(notes) != 1 {
		t.Fatalf("Upsert should not duplicate, got %d notes", len(notes))
	}
	if notes[0].RawTranscript != "second version" {
		t.Errorf("Stored note should hold the update, got %q", notes[0].RawTranscript)
	}
}

func TestListAndDelete(t *testing.T) {
	s := newTestService(&fakeTranscriber{}, &fakePolisher{})

	first, _ := s.Save(models.VoiceNote{RawTranscript: "one"})
	second, _ := s.Save(models.VoiceNote{RawTranscript: "two"})
	second.UpdatedAt = first.UpdatedAt + 1000
	if err := s.store.Save(second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	notes := s.List()
	if len(notes) != 2 {
		t.Fatalf("Expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != second.ID {
		t.Error("Most recently updated note should list first")
	}

	if err := s.Delete(first.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(s.List()) != 1 {
		t.Error("Delete should remove exactly one note")
	}
	if err := s.Delete("missing"); err != nil {
		t.Errorf("Deleting an absent id should be a no-op, got %v", err)
	}
}
