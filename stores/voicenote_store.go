package stores

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/ub-intelligence/dharmabot/models"
)

// VoiceNoteStore persists voice notes as one JSON array.
type VoiceNoteStore struct {
	store KeyValueStore
}

// NewVoiceNoteStore creates a voice-note store over the given key-value store
func NewVoiceNoteStore(store KeyValueStore) *VoiceNoteStore {
	return &VoiceNoteStore{store: store}
}

// ListAll returns notes sorted by UpdatedAt descending, empty on failure.
func (s *VoiceNoteStore) ListAll() ([]models.VoiceNote, error) {
	raw, ok, err := s.store.Get(KeyVoiceNotes)
	if err != nil {
		log.Printf("Error loading voice notes: %v", err)
		return []models.VoiceNote{}, err
	}
	if !ok {
		return []models.VoiceNote{}, nil
	}

	var notes []models.VoiceNote
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		log.Printf("Error parsing voice notes: %v", err)
		return []models.VoiceNote{}, fmt.Errorf("failed to parse voice notes: %w", err)
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt > notes[j].UpdatedAt
	})
	return notes, nil
}

// Save upserts the note by id and rewrites the collection.
func (s *VoiceNoteStore) Save(note models.VoiceNote) error {
	notes, _ := s.ListAll()

	replaced := false
	for i, n := range notes {
		if n.ID == note.ID {
			notes[i] = note
			replaced = true
			break
		}
	}
	if !replaced {
		notes = append(notes, note)
	}

	return s.writeAll(notes)
}

// Delete removes the note with the given id; absent ids are a no-op.
func (s *VoiceNoteStore) Delete(id string) error {
	notes, _ := s.ListAll()
	kept := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	return s.writeAll(kept)
}

func (s *VoiceNoteStore) writeAll(notes []models.VoiceNote) error {
	data, err := json.Marshal(notes)
	if err != nil {
		log.Printf("Error marshalling voice notes: %v", err)
		return fmt.Errorf("failed to marshal voice notes: %w", err)
	}
	if err := s.store.Set(KeyVoiceNotes, string(data)); err != nil {
		log.Printf("Error saving voice notes: %v", err)
		return err
	}
	return nil
}
