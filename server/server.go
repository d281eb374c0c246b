package server

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ub-intelligence/dharmabot/auth"
	"github.com/ub-intelligence/dharmabot/drafting"
	"github.com/ub-intelligence/dharmabot/lawyers"
	"github.com/ub-intelligence/dharmabot/research"
	"github.com/ub-intelligence/dharmabot/sessions"
	"github.com/ub-intelligence/dharmabot/stores"
	"github.com/ub-intelligence/dharmabot/voicenotes"
)

// Server wires the app services behind an HTTP and WebSocket API.
type Server struct {
	Chat       *sessions.Controller
	Auth       *auth.Service
	Research   *research.Service
	Drafting   *drafting.Service
	VoiceNotes *voicenotes.Service
	Lawyers    *lawyers.Directory
	Prefs      *stores.PreferenceStore
	Logger     *log.Logger
}

// NewServer creates a server over the given services
func NewServer(chat *sessions.Controller, authSvc *auth.Service, researchSvc *research.Service,
	draftingSvc *drafting.Service, voiceSvc *voicenotes.Service, directory *lawyers.Directory,
	prefs *stores.PreferenceStore) *Server {
	return &Server{
		Chat:       chat,
		Auth:       authSvc,
		Research:   researchSvc,
		Drafting:   draftingSvc,
		VoiceNotes: voiceSvc,
		Lawyers:    directory,
		Prefs:      prefs,
		Logger:     log.New(os.Stdout, "[SERVER] ", log.LstdFlags),
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	r := router.Group("/api/v1")

	// Chat
	r.POST("/chat", s.handleSubmitQuery)
	r.POST("/chat/new", s.handleNewChat)
	r.GET("/chat/sessions", s.handleListSessions)
	r.POST("/chat/sessions/:id/load", s.handleLoadSession)
	r.PUT("/chat/sessions/:id/title", s.handleRenameSession)
	r.DELETE("/chat/sessions/:id", s.handleDeleteSession)

	// Auth
	r.POST("/auth/register", s.handleRegister)
	r.POST("/auth/login", s.handleLogin)
	r.POST("/auth/logout", s.handleLogout)
	r.GET("/auth/me", s.handleCurrentUser)

	// Deep research
	r.POST("/research", s.handleRunResearch)
	r.POST("/research/save", s.handleSaveResearch)
	r.GET("/research", s.handleListResearch)
	r.DELETE("/research/:id", s.handleDeleteResearch)
	r.GET("/research/:id/export", s.handleExportResearch)

	// Document drafting
	r.POST("/drafts", s.handleGenerateDraft)
	r.POST("/drafts/export", s.handleExportDraft)

	// Voice notes
	r.POST("/voicenotes/transcriptions", s.handleProcessRecording)
	r.POST("/voicenotes", s.handleSaveVoiceNote)
	r.GET("/voicenotes", s.handleListVoiceNotes)
	r.DELETE("/voicenotes/:id", s.handleDeleteVoiceNote)

	// Lawyer directory
	r.GET("/lawyers", s.handleListLawyers)
	r.GET("/lawyers/cities", s.handleLawyerCities)

	// Preferences
	r.GET("/preferences/theme", s.handleGetTheme)
	r.PUT("/preferences/theme", s.handleSetTheme)

	// WebSocket chat
	router.GET("/ws/chat", s.handleChatSocket)

	return router
}

// Run starts the server on the given port.
func (s *Server) Run(port int) error {
	return s.Router().Run(fmt.Sprintf(":%d", port))
}
