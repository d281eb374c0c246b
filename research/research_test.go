package research

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ub-intelligence/dharmabot/models"
	"github.com/ub-intelligence/dharmabot/stores"
)

type fakeGateway struct {
	resp models.AIResponse
	err  error
}

func (g *fakeGateway) DeepResearch(ctx context.Context, query string) (models.AIResponse, error) {
	return g.resp, g.err
}

func newTestService(gw *fakeGateway) *Service {
	return NewService(gw, stores.NewResearchStore(stores.NewMemoryStore()))
}

func TestRun_ReturnsResultsWithCitations(t *testing.T) {
	gw := &fakeGateway{resp: models.AIResponse{
		Text: "Findings on the new act.",
		Sources: []models.GroundingChunk{
			{Web: models.WebSource{URI: "https://example.in/act", Title: "The Act"}},
		},
	}}
	s := newTestService(gw)

	result, err := s.Run(context.Background(), "Summarize the new act")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Results != "Findings on the new act." {
		t.Errorf("Unexpected results: %q", result.Results)
	}
	if len(result.Citations) != 1 {
		t.Errorf("Expected 1 citation, got %d", len(result.Citations))
	}
	if result.Title != "Summarize the new act" {
		t.Errorf("Short query should be the title verbatim, got %q", result.Title)
	}
}

func TestRun_EmptyQueryRejected(t *testing.T) {
	s := newTestService(&fakeGateway{})
	if _, err := s.Run(context.Background(), "   "); err == nil {
		t.Error("Blank query should fail")
	}
}

func TestRun_GatewayErrorPropagates(t *testing.T) {
	s := newTestService(&fakeGateway{err: errors.New("timeout")})
	if _, err := s.Run(context.Background(), "query"); err == nil {
		t.Error("Gateway error should propagate")
	}
}

func TestDefaultTitle_Truncation(t *testing.T) {
	long := strings.Repeat("a", 60)
	title := DefaultTitle(long)
	if title != strings.Repeat("a", 50)+"..." {
		t.Errorf("Expected 50 chars plus ellipsis, got %q", title)
	}
	if DefaultTitle("short") != "short" {
		t.Error("Short query should not be truncated")
	}
}

func TestSaveListDelete_RoundTrip(t *testing.T) {
	s := newTestService(&fakeGateway{})

	first, err := s.Save(Result{Title: "First", Query: "q1", Results: "r1"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second, err := s.Save(Result{Title: "Second", Query: "q2", Results: "r2"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	items := s.List()
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].ID != second.ID {
		t.Error("Newest item should list first")
	}

	if err := s.Delete(first.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(s.List()) != 1 {
		t.Error("Delete should remove exactly one item")
	}
	if err := s.Delete("missing"); err != nil {
		t.Errorf("Deleting an absent id should be a no-op, got %v", err)
	}
}

func TestSave_EmptyTitleFallsBack(t *testing.T) {
	s := newTestService(&fakeGateway{})
	item, err := s.Save(Result{Query: "q", Results: "r"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if item.Title != "Untitled Research" {
		t.Errorf("Expected fallback title, got %q", item.Title)
	}
}

func TestExportFilename_Sanitization(t *testing.T) {
	if got := ExportFilename("New Act: §73 (2024)"); got != "New_Act___73__2024_.txt" {
		t.Errorf("Unexpected filename: %q", got)
	}
	if got := ExportFilename(""); got != "research.txt" {
		t.Errorf("Empty title should fall back, got %q", got)
	}
}

func TestExportText_Layout(t *testing.T) {
	result := Result{
		Query:   "the query",
		Results: "the findings",
		Citations: []models.GroundingChunk{
			{Web: models.WebSource{URI: "https://a.in", Title: "A"}},
			{Web: models.WebSource{URI: "https://b.in"}},
		},
	}
	text := ExportText(result, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	if !strings.HasPrefix(text, "Research Query: the query\n") {
		t.Errorf("Export should open with the query, got %q", text[:40])
	}
	if !strings.Contains(text, "Generated on: 9/1/2026") {
		t.Error("Export should include the generation date")
	}
	if !strings.Contains(text, "1. A (https://a.in)") {
		t.Error("Titled citation should render title and URI")
	}
	if !strings.Contains(text, "2. https://b.in (https://b.in)") {
		t.Error("Untitled citation should fall back to the URI")
	}
}

func TestExportText_NoCitationsSectionWhenEmpty(t *testing.T) {
	text := ExportText(Result{Query: "q", Results: "r"}, time.Now())
	if strings.Contains(text, "Sources & Citations") {
		t.Error("Citations section should be omitted when there are none")
	}
}
