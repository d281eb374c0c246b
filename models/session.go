package models

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

const titleMaxRunes = 40

// ChatSession is a titled, timestamped, ordered collection of chat messages.
// Message insertion order is the sole ordering signal within a session.
type ChatSession struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	CreatedAt int64         `json:"createdAt"`
	UpdatedAt int64         `json:"updatedAt"`
	Messages  []ChatMessage `json:"messages"`
}

// NowMillis returns the current time as epoch milliseconds, the timestamp
// unit used across all stored records.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// NewChatSession creates a session titled after the first query.
func NewChatSession(firstQuery string) *ChatSession {
	now := NowMillis()
	return &ChatSession{
		ID:        uuid.NewString(),
		Title:     DefaultSessionTitle(firstQuery),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultSessionTitle truncates a query to at most 40 runes, appending an
// ellipsis when truncated.
func DefaultSessionTitle(query string) string {
	runes := []rune(query)
	if len(runes) > titleMaxRunes {
		return string(runes[:titleMaxRunes]) + "..."
	}
	return query
}

// Append adds a message to the end of the session and refreshes UpdatedAt.
func (s *ChatSession) Append(msg ChatMessage) {
	s.Messages = append(s.Messages, msg)
	s.UpdatedAt = NowMillis()
}

// Rename sets a new title and refreshes UpdatedAt.
func (s *ChatSession) Rename(title string) {
	s.Title = title
	s.UpdatedAt = NowMillis()
}

// chatSessionJSON mirrors ChatSession with raw messages so the tagged union
// can be dispatched on decode.
type chatSessionJSON struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	CreatedAt int64             `json:"createdAt"`
	UpdatedAt int64             `json:"updatedAt"`
	Messages  []json.RawMessage `json:"messages"`
}

// UnmarshalJSON decodes the session. Messages with unrecognized roles are
// preserved as UnknownMessage; a malformed message is skipped with a
// warning and never fails the whole session.
func (s *ChatSession) UnmarshalJSON(data []byte) error {
	var raw chatSessionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	s.ID = raw.ID
	s.Title = raw.Title
	s.CreatedAt = raw.CreatedAt
	s.UpdatedAt = raw.UpdatedAt
	s.Messages = nil

	for i, rm := range raw.Messages {
		msg, err := UnmarshalChatMessage(rm)
		if err != nil {
			log.Printf("Warning: skipping message %d in session %s: %v", i, raw.ID, err)
			continue
		}
		s.Messages = append(s.Messages, msg)
	}
	return nil
}
