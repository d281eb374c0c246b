package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ub-intelligence/dharmabot/drafting"
	"github.com/ub-intelligence/dharmabot/models"
	"github.com/ub-intelligence/dharmabot/research"
	"github.com/ub-intelligence/dharmabot/sessions"
)

// submitQueryRequest is one chat turn from the client.
type submitQueryRequest struct {
	Text          string                 `json:"text" binding:"required"`
	Files         []models.ProcessedFile `json:"files"`
	SearchEnabled bool                   `json:"searchEnabled"`
}

func (s *Server) handleSubmitQuery(c *gin.Context) {
	var req submitQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := s.Chat.SubmitQuery(c.Request.Context(), req.Text, req.Files, req.SearchEnabled)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, sessions.ErrSessionDeleted):
			c.JSON(http.StatusGone, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msg,
		"session": s.Chat.ActiveSession(),
	})
}

func (s *Server) handleNewChat(c *gin.Context) {
	s.Chat.StartNewChat()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, s.Chat.Sessions())
}

func (s *Server) handleLoadSession(c *gin.Context) {
	if err := s.Chat.LoadChat(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.Chat.ActiveSession())
}

func (s *Server) handleRenameSession(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Chat.RenameChat(c.Param("id"), req.Title); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleDeleteSession(c *gin.Context) {
	s.Chat.DeleteChat(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type registerRequest struct {
	ProfileType models.UserProfileType `json:"profileType" binding:"required"`
	Email       string                 `json:"email" binding:"required"`
	Phone       string                 `json:"phone" binding:"required"`
	PasswordOne string                 `json:"passwordOne" binding:"required"`
	PasswordTwo string                 `json:"passwordTwo" binding:"required"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := s.Auth.Register(req.ProfileType, req.Email, req.Phone, req.PasswordOne, req.PasswordTwo)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}

func (s *Server) handleLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := s.Auth.Login(req.Email, req.Password)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnauthorized
	}
	c.JSON(status, result)
}

func (s *Server) handleLogout(c *gin.Context) {
	s.Auth.Logout()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleCurrentUser(c *gin.Context) {
	user := s.Auth.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleRunResearch(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.Research.Run(c.Request.Context(), req.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleSaveResearch(c *gin.Context) {
	var req research.Result
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := s.Research.Save(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) handleListResearch(c *gin.Context) {
	c.JSON(http.StatusOK, s.Research.List())
}

func (s *Server) handleDeleteResearch(c *gin.Context) {
	if err := s.Research.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleExportResearch(c *gin.Context) {
	id := c.Param("id")
	for _, item := range s.Research.List() {
		if item.ID != id {
			continue
		}
		result := research.Result{
			Title:     item.Title,
			Query:     item.Query,
			Results:   item.Results,
			Citations: item.Citations,
		}
		c.Header("Content-Disposition", `attachment; filename="`+research.ExportFilename(item.Title)+`"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(research.ExportText(result, time.Now())))
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "research not found"})
}

func (s *Server) handleGenerateDraft(c *gin.Context) {
	var req struct {
		Instructions string `json:"instructions" binding:"required"`
		Title        string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := s.Drafting.Generate(c.Request.Context(), req.Instructions, req.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (s *Server) handleExportDraft(c *gin.Context) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+drafting.ExportFilename(req.Title)+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(drafting.ExportPlainText(req.Content)))
}

func (s *Server) handleListLawyers(c *gin.Context) {
	c.JSON(http.StatusOK, s.Lawyers.Filter(c.Query("search"), c.Query("city")))
}

func (s *Server) handleLawyerCities(c *gin.Context) {
	c.JSON(http.StatusOK, s.Lawyers.Cities())
}

func (s *Server) handleGetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": s.Prefs.Theme("light")})
}

func (s *Server) handleSetTheme(c *gin.Context) {
	var req struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Theme != "light" && req.Theme != "dark" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "theme must be light or dark"})
		return
	}
	if err := s.Prefs.SetTheme(req.Theme); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
