package stores

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/ub-intelligence/dharmabot/models"
)

// SessionRepository owns the durable representation of chat sessions. The
// whole collection is serialized under one key and rewritten on every save,
// so callers must hold the full up-to-date collection before saving.
//
// Errors returned by the repository are advisory: the repository itself
// already degrades (empty collection on read failure, dropped write on
// write failure) so the chat flow never breaks on storage trouble.
type SessionRepository struct {
	store KeyValueStore
}

// NewSessionRepository creates a repository over the given store
func NewSessionRepository(store KeyValueStore) *SessionRepository {
	return &SessionRepository{store: store}
}

// ListAll returns every stored session sorted by UpdatedAt descending.
// On read or parse failure it logs, returns an empty slice and the
// advisory error.
func (r *SessionRepository) ListAll() ([]*models.ChatSession, error) {
	raw, ok, err := r.store.Get(KeyChatSessions)
	if err != nil {
		log.Printf("Error loading chat sessions: %v", err)
		return []*models.ChatSession{}, err
	}
	if !ok {
		return []*models.ChatSession{}, nil
	}

	var sessions []*models.ChatSession
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		log.Printf("Error parsing chat sessions: %v", err)
		return []*models.ChatSession{}, fmt.Errorf("failed to parse chat sessions: %w", err)
	}

	SortSessions(sessions)
	return sessions, nil
}

// Get returns the session with the given id, or nil if absent.
func (r *SessionRepository) Get(sessionID string) (*models.ChatSession, error) {
	sessions, err := r.ListAll()
	if err != nil {
		return nil, err
	}
	for _, s := range sessions {
		if s.ID == sessionID {
			return s, nil
		}
	}
	return nil, nil
}

// Save upserts the session by id and rewrites the whole collection.
// On failure the write is dropped and the advisory error returned.
func (r *SessionRepository) Save(session *models.ChatSession) error {
	sessions, _ := r.ListAll()

	replaced := false
	for i, s := range sessions {
		if s.ID == session.ID {
			sessions[i] = session
			replaced = true
			break
		}
	}
	if !replaced {
		sessions = append(sessions, session)
	}

	return r.writeAll(sessions)
}

// Delete removes the session with the given id. Deleting an absent id is a
// no-op, not an error.
func (r *SessionRepository) Delete(sessionID string) error {
	sessions, _ := r.ListAll()

	kept := sessions[:0]
	for _, s := range sessions {
		if s.ID != sessionID {
			kept = append(kept, s)
		}
	}

	return r.writeAll(kept)
}

// DeleteAll clears the entire session collection key.
func (r *SessionRepository) DeleteAll() error {
	if err := r.store.Remove(KeyChatSessions); err != nil {
		log.Printf("Error deleting all chat sessions: %v", err)
		return err
	}
	return nil
}

func (r *SessionRepository) writeAll(sessions []*models.ChatSession) error {
	data, err := json.Marshal(sessions)
	if err != nil {
		log.Printf("Error marshalling chat sessions: %v", err)
		return fmt.Errorf("failed to marshal chat sessions: %w", err)
	}
	if err := r.store.Set(KeyChatSessions, string(data)); err != nil {
		log.Printf("Error saving chat sessions: %v", err)
		return err
	}
	return nil
}

// SortSessions orders sessions by UpdatedAt descending. The sort is stable
// so ties keep their relative order.
func SortSessions(sessions []*models.ChatSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt > sessions[j].UpdatedAt
	})
}
