package drafting

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ub-intelligence/dharmabot/models"
)

// Gateway generates a legal document draft from user instructions.
type Gateway interface {
	DraftDocument(ctx context.Context, instructions string) (models.AIResponse, error)
}

// Service turns drafting instructions into document drafts and renders
// them for export.
type Service struct {
	gateway Gateway
}

// NewService creates a drafting service
func NewService(gateway Gateway) *Service {
	return &Service{gateway: gateway}
}

// Draft is a generated document.
type Draft struct {
	Title   string
	Content string
}

// Generate produces a draft from the instructions. An untitled draft is
// named "Generated Document".
func (s *Service) Generate(ctx context.Context, instructions, title string) (Draft, error) {
	if strings.TrimSpace(instructions) == "" {
		return Draft{}, fmt.Errorf("please provide instructions for the document")
	}

	resp, err := s.gateway.DraftDocument(ctx, instructions)
	if err != nil {
		return Draft{}, fmt.Errorf("document generation failed: %w", err)
	}

	if title == "" || title == "Untitled Document" {
		title = "Generated Document"
	}
	return Draft{Title: title, Content: resp.Text}, nil
}

var (
	filenamePattern = regexp.MustCompile(`[^a-zA-Z0-9]`)
	htmlTagPattern  = regexp.MustCompile(`<[^>]*>`)
	headerPattern   = regexp.MustCompile(`#{1,6}\s`)
	boldPattern     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern   = regexp.MustCompile(`\*(.*?)\*`)
)

// ExportFilename sanitizes the title into a .txt filename.
func ExportFilename(title string) string {
	if title == "" {
		title = "Untitled Document"
	}
	return filenamePattern.ReplaceAllString(title, "_") + ".txt"
}

// ExportPlainText strips HTML tags and markdown decoration from the draft
// content so the export reads as plain text.
func ExportPlainText(content string) string {
	text := htmlTagPattern.ReplaceAllString(content, "")
	text = headerPattern.ReplaceAllString(text, "")
	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	return text
}
