package server

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ub-intelligence/dharmabot/models"
)

// processRecordingRequest carries a finished recording as inline base64.
type processRecordingRequest struct {
	AudioBase64     string `json:"audioBase64" binding:"required"`
	MimeType        string `json:"mimeType"`
	DurationSeconds int    `json:"durationSeconds"`
}

func (s *Server) handleProcessRecording(c *gin.Context) {
	var req processRecordingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	audio, err := base64.StdEncoding.DecodeString(req.AudioBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid base64 audio data"})
		return
	}
	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "audio/m4a"
	}

	note, err := s.VoiceNotes.ProcessRecording(c.Request.Context(), audio, mimeType, req.DurationSeconds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, note)
}

func (s *Server) handleSaveVoiceNote(c *gin.Context) {
	var note models.VoiceNote
	if err := c.ShouldBindJSON(&note); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := s.VoiceNotes.Save(note)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) handleListVoiceNotes(c *gin.Context) {
	c.JSON(http.StatusOK, s.VoiceNotes.List())
}

func (s *Server) handleDeleteVoiceNote(c *gin.Context) {
	if err := s.VoiceNotes.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
