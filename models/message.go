package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser   Role = "user"
	RoleAI     Role = "ai"
	RoleSystem Role = "system"
)

// ChatMessage is the tagged union of message variants stored in a session.
// The concrete type is determined by the "role" field in the serialized form.
type ChatMessage interface {
	MessageID() string
	MessageRole() Role
	MessageTimestamp() int64
}

// AttachedFileInfo is metadata about a file attached to a user query.
// Raw file bytes are never stored in a session, only this record.
type AttachedFileInfo struct {
	Name     string `json:"name"`
	MimeType string `json:"type"`
	Size     int64  `json:"size"`
}

// WebSource is a single web reference inside a grounding chunk.
type WebSource struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// GroundingChunk is a citation returned alongside a generated answer.
// Order within a message equals the order returned by the inference call.
type GroundingChunk struct {
	Web WebSource `json:"web"`
}

// UserQueryMessage is a query submitted by the user, with attachment metadata.
type UserQueryMessage struct {
	ID        string             `json:"id"`
	Role      Role               `json:"role"`
	Timestamp int64              `json:"timestamp"`
	QueryText string             `json:"queryText"`
	FilesInfo []AttachedFileInfo `json:"filesInfo,omitempty"`
}

func (m *UserQueryMessage) MessageID() string       { return m.ID }
func (m *UserQueryMessage) MessageRole() Role       { return m.Role }
func (m *UserQueryMessage) MessageTimestamp() int64 { return m.Timestamp }

// AIResponseMessage is a model answer, or an error surfaced as chat content.
type AIResponseMessage struct {
	ID        string           `json:"id"`
	Role      Role             `json:"role"`
	Timestamp int64            `json:"timestamp"`
	Text      string           `json:"text"`
	Sources   []GroundingChunk `json:"sources,omitempty"`
	FileName  string           `json:"fileName,omitempty"`
}

func (m *AIResponseMessage) MessageID() string       { return m.ID }
func (m *AIResponseMessage) MessageRole() Role       { return m.Role }
func (m *AIResponseMessage) MessageTimestamp() int64 { return m.Timestamp }

// SystemMessage is controller-injected content, not user-visible chat.
type SystemMessage struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Timestamp int64  `json:"timestamp"`
	Text      string `json:"text"`
}

func (m *SystemMessage) MessageID() string       { return m.ID }
func (m *SystemMessage) MessageRole() Role       { return m.Role }
func (m *SystemMessage) MessageTimestamp() int64 { return m.Timestamp }

// NewUserQueryMessage builds a user message with a fresh id and timestamp.
func NewUserQueryMessage(queryText string, filesInfo []AttachedFileInfo) *UserQueryMessage {
	return &UserQueryMessage{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Timestamp: NowMillis(),
		QueryText: queryText,
		FilesInfo: filesInfo,
	}
}

// NewAIResponseMessage builds an AI message with a fresh id and timestamp.
func NewAIResponseMessage(text string, sources []GroundingChunk, fileName string) *AIResponseMessage {
	return &AIResponseMessage{
		ID:        uuid.NewString(),
		Role:      RoleAI,
		Timestamp: NowMillis(),
		Text:      text,
		Sources:   sources,
		FileName:  fileName,
	}
}

// NewSystemMessage builds a system message with a fresh id and timestamp.
func NewSystemMessage(text string) *SystemMessage {
	return &SystemMessage{
		ID:        uuid.NewString(),
		Role:      RoleSystem,
		Timestamp: NowMillis(),
		Text:      text,
	}
}

// UnknownMessage preserves a message whose role this build does not
// recognize. It re-serializes byte-for-byte so a collection rewrite never
// drops data written by a newer build. The context builder skips it.
type UnknownMessage struct {
	ID        string
	Role      Role
	Timestamp int64
	Raw       json.RawMessage
}

func (m *UnknownMessage) MessageID() string       { return m.ID }
func (m *UnknownMessage) MessageRole() Role       { return m.Role }
func (m *UnknownMessage) MessageTimestamp() int64 { return m.Timestamp }

func (m *UnknownMessage) MarshalJSON() ([]byte, error) { return m.Raw, nil }

// UnmarshalChatMessage decodes a single serialized message, dispatching on
// the role tag. Unknown roles come back as UnknownMessage, not an error.
func UnmarshalChatMessage(data []byte) (ChatMessage, error) {
	var probe struct {
		ID        string `json:"id"`
		Role      Role   `json:"role"`
		Timestamp int64  `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to probe message role: %w", err)
	}

	switch probe.Role {
	case RoleUser:
		var m UserQueryMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user message: %w", err)
		}
		return &m, nil
	case RoleAI:
		var m AIResponseMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ai message: %w", err)
		}
		return &m, nil
	case RoleSystem:
		var m SystemMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal system message: %w", err)
		}
		return &m, nil
	default:
		raw := make(json.RawMessage, len(data))
		copy(raw, data)
		return &UnknownMessage{
			ID:        probe.ID,
			Role:      probe.Role,
			Timestamp: probe.Timestamp,
			Raw:       raw,
		}, nil
	}
}
