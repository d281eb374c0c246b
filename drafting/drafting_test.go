package drafting

import (
	"context"
	"errors"
	"testing"

	"github.com/ub-intelligence/dharmabot/models"
)

type fakeGateway struct {
	resp models.AIResponse
	err  error
}

func (g *fakeGateway) DraftDocument(ctx context.Context, instructions string) (models.AIResponse, error) {
	return g.resp, g.err
}

func TestGenerate_ReturnsDraft(t *testing.T) {
	s := NewService(&fakeGateway{resp: models.AIResponse{Text: "# Rental Agreement\n\nThis agreement..."}})

	draft, err := s.Generate(context.Background(), "draft a rental agreement", "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if draft.Content == "" {
		t.Error("Draft content should be set")
	}
	if draft.Title != "Generated Document" {
		t.Errorf("Untitled draft should be named Generated Document, got %q", draft.Title)
	}
}

func TestGenerate_KeepsUserTitle(t *testing.T) {
	s := NewService(&fakeGateway{resp: models.AIResponse{Text: "content"}})
	draft, err := s.Generate(context.Background(), "instructions", "My Lease Draft")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if draft.Title != "My Lease Draft" {
		t.Errorf("Explicit title should be kept, got %q", draft.Title)
	}
}

func TestGenerate_BlankInstructionsRejected(t *testing.T) {
	s := NewService(&fakeGateway{})
	if _, err := s.Generate(context.Background(), "  ", ""); err == nil {
		t.Error("Blank instructions should fail")
	}
}

func TestGenerate_GatewayErrorPropagates(t *testing.T) {
	s := NewService(&fakeGateway{err: errors.New("unavailable")})
	if _, err := s.Generate(context.Background(), "instructions", ""); err == nil {
		t.Error("Gateway error should propagate")
	}
}

func TestExportFilename_Sanitization(t *testing.T) {
	if got := ExportFilename("Lease Deed (Draft #1)"); got != "Lease_Deed__Draft__1_.txt" {
		t.Errorf("Unexpected filename: %q", got)
	}
	if got := ExportFilename(""); got != "Untitled_Document.txt" {
		t.Errorf("Empty title should fall back, got %q", got)
	}
}

func TestExportPlainText_StripsMarkup(t *testing.T) {
	content := "## Heading\n\nThis is **bold** and *italic* with <b>html</b> tags."
	got := ExportPlainText(content)
	want := "Heading\n\nThis is bold and italic with html tags."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
