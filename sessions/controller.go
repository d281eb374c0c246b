package sessions

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/ub-intelligence/dharmabot/models"
	"github.com/ub-intelligence/dharmabot/prompt"
	"github.com/ub-intelligence/dharmabot/stores"
)

// Controller orchestrates chat turns: user input, message append, context
// build, gateway call, response append, persistence. It owns the in-memory
// session collection, the active-session pointer and the pending input;
// the repository is only ever written through this controller.
type Controller struct {
	repo    *stores.SessionRepository
	gateway Gateway
	logger  *log.Logger

	mu           sync.Mutex
	sessions     []*models.ChatSession
	activeID     string
	pendingText  string
	pendingFiles []models.ProcessedFile
	loading      bool
	lastError    string
}

// NewController creates a controller and loads the stored sessions. A
// storage failure degrades to an empty collection.
func NewController(repo *stores.SessionRepository, gateway Gateway) *Controller {
	logger := log.New(os.Stdout, "[CHAT] ", log.LstdFlags)

	sessions, err := repo.ListAll()
	if err != nil {
		logger.Printf("Starting with empty session list: %v", err)
	}

	return &Controller{
		repo:     repo,
		gateway:  gateway,
		logger:   logger,
		sessions: sessions,
	}
}

// SubmitQuery runs one full chat turn. Exactly two messages are appended
// to the session per call: the user message, then either the AI response
// or an error message. The returned message is the appended AI message.
//
// Only one submission may be in flight at a time; a concurrent call
// returns ErrSubmissionInFlight. If the session is deleted while the
// gateway call is pending, the response is dropped and ErrSessionDeleted
// returned.
func (c *Controller) SubmitQuery(ctx context.Context, text string, files []models.ProcessedFile, searchEnabled bool) (*models.AIResponseMessage, error) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	c.loading = true
	c.lastError = ""
	c.pendingText = text
	c.pendingFiles = files

	filesInfo := make([]models.AttachedFileInfo, 0, len(files))
	for _, f := range files {
		filesInfo = append(filesInfo, f.Info())
	}
	userMsg := models.NewUserQueryMessage(text, filesInfo)

	var session *models.ChatSession
	var history []models.ChatMessage

	if c.activeID == "" {
		session = models.NewChatSession(text)
		c.activeID = session.ID
		c.sessions = append([]*models.ChatSession{session}, c.sessions...)
	} else {
		session = c.findSessionLocked(c.activeID)
		if session == nil {
			// Active pointer went stale; recover by starting fresh.
			c.logger.Printf("Active session %s not found, creating a new one", c.activeID)
			session = models.NewChatSession(text)
			c.activeID = session.ID
			c.sessions = append([]*models.ChatSession{session}, c.sessions...)
		}
		// Context is built from the pre-submission history so the current
		// query does not appear twice.
		history = append(history, session.Messages...)
	}

	session.Append(userMsg)
	c.persistLocked(session)
	stores.SortSessions(c.sessions)

	// Input is cleared before the gateway responds so the next message can
	// be typed while this one is pending.
	c.pendingText = ""
	c.pendingFiles = nil

	docs := models.DocumentsForAI(files)
	contents := prompt.Build(history, text, docs)
	cfg := models.InferenceConfig{
		SearchEnabled: prompt.EffectiveSearchEnabled(text, searchEnabled),
	}
	capturedID := session.ID
	c.mu.Unlock()

	// The gateway call is the single suspension point; the lock is not
	// held across it.
	resp, gatewayErr := c.gateway.Converse(ctx, contents, cfg)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	target := c.findSessionLocked(capturedID)
	if target == nil {
		c.logger.Printf("Dropping response for deleted session %s", capturedID)
		return nil, ErrSessionDeleted
	}

	var aiMsg *models.AIResponseMessage
	if gatewayErr != nil {
		message := fmt.Sprintf("Failed to get AI response: %v", gatewayErr)
		c.lastError = message
		aiMsg = models.NewAIResponseMessage("Error: "+message, nil, "")
	} else {
		fileName := ""
		if len(filesInfo) > 0 {
			names := make([]string, len(filesInfo))
			for i, f := range filesInfo {
				names[i] = f.Name
			}
			fileName = strings.Join(names, ", ")
		}
		aiMsg = models.NewAIResponseMessage(resp.Text, resp.Sources, fileName)
	}

	target.Append(aiMsg)
	c.persistLocked(target)
	stores.SortSessions(c.sessions)

	return aiMsg, nil
}

// StartNewChat clears the active pointer and the pending input. Existing
// sessions are untouched.
func (c *Controller) StartNewChat() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeID = ""
	c.pendingText = ""
	c.pendingFiles = nil
}

// LoadChat redirects the active pointer to an existing session.
func (c *Controller) LoadChat(sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.findSessionLocked(sessionID) == nil {
		return fmt.Errorf("session %s not found", sessionID)
	}
	c.activeID = sessionID
	return nil
}

// RenameChat updates the session title, refreshes UpdatedAt, re-persists
// and re-sorts the collection.
func (c *Controller) RenameChat(sessionID, newTitle string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	session := c.findSessionLocked(sessionID)
	if session == nil {
		return fmt.Errorf("session %s not found", sessionID)
	}

	session.Rename(newTitle)
	c.persistLocked(session)
	stores.SortSessions(c.sessions)
	return nil
}

// DeleteChat removes the session from the repository and the in-memory
// collection. Deleting an unknown id is a no-op. Deleting the active
// session clears the active pointer and the pending input.
func (c *Controller) DeleteChat(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.repo.Delete(sessionID); err != nil {
		c.logger.Printf("Storage delete failed for session %s: %v", sessionID, err)
	}

	kept := c.sessions[:0]
	for _, s := range c.sessions {
		if s.ID != sessionID {
			kept = append(kept, s)
		}
	}
	c.sessions = kept

	if c.activeID == sessionID {
		c.activeID = ""
		c.pendingText = ""
		c.pendingFiles = nil
	}
}

// Prune deletes the oldest sessions beyond the given cap. Used by the
// retention sweeper.
func (c *Controller) Prune(maxSessions int) int {
	if maxSessions <= 0 {
		return 0
	}

	c.mu.Lock()
	excess := len(c.sessions) - maxSessions
	if excess <= 0 {
		c.mu.Unlock()
		return 0
	}
	// Sessions are sorted by UpdatedAt descending, so the tail holds the
	// stalest entries.
	victims := make([]string, 0, excess)
	for _, s := range c.sessions[len(c.sessions)-excess:] {
		victims = append(victims, s.ID)
	}
	c.mu.Unlock()

	for _, id := range victims {
		c.DeleteChat(id)
	}
	return len(victims)
}

// Sessions returns a snapshot of the collection, sorted by UpdatedAt
// descending.
func (c *Controller) Sessions() []*models.ChatSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*models.ChatSession, len(c.sessions))
	copy(out, c.sessions)
	return out
}

// ActiveSession returns the active session, or nil when no chat is open.
func (c *Controller) ActiveSession() *models.ChatSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeID == "" {
		return nil
	}
	return c.findSessionLocked(c.activeID)
}

// PendingInput returns the working input state.
func (c *Controller) PendingInput() (string, []models.ProcessedFile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingText, c.pendingFiles
}

// SetPendingInput stages input before submission.
func (c *Controller) SetPendingInput(text string, files []models.ProcessedFile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingText = text
	c.pendingFiles = files
}

// IsLoading reports whether a submission is awaiting its response.
func (c *Controller) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// LastError returns the banner-style error from the most recent failed
// submission, empty when the last turn succeeded.
func (c *Controller) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

func (c *Controller) findSessionLocked(id string) *models.ChatSession {
	for _, s := range c.sessions {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// persistLocked saves best-effort: a storage failure is logged and the
// in-memory state stays authoritative.
func (c *Controller) persistLocked(session *models.ChatSession) {
	if err := c.repo.Save(session); err != nil {
		c.logger.Printf("Storage save failed for session %s: %v", session.ID, err)
	}
}
