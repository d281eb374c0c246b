package research

import (
	"context"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ub-intelligence/dharmabot/models"
	"github.com/ub-intelligence/dharmabot/stores"
)

const titleMaxChars = 50

var filenamePattern = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Gateway is the inference call deep research depends on. Web grounding is
// always enabled for research queries.
type Gateway interface {
	DeepResearch(ctx context.Context, query string) (models.AIResponse, error)
}

// Service runs grounded research queries and manages the saved-research
// collection.
type Service struct {
	gateway Gateway
	store   *stores.ResearchStore
	logger  *log.Logger
}

// NewService creates a research service
func NewService(gateway Gateway, store *stores.ResearchStore) *Service {
	return &Service{
		gateway: gateway,
		store:   store,
		logger:  log.New(os.Stdout, "[RESEARCH] ", log.LstdFlags),
	}
}

// Result is one completed research run, not yet saved.
type Result struct {
	Title     string
	Query     string
	Results   string
	Citations []models.GroundingChunk
}

// Run executes a research query and derives a default title from it.
func (s *Service) Run(ctx context.Context, query string) (Result, error) {
	if strings.TrimSpace(query) == "" {
		return Result{}, fmt.Errorf("research query is empty")
	}

	resp, err := s.gateway.DeepResearch(ctx, query)
	if err != nil {
		return Result{}, fmt.Errorf("research failed: %w", err)
	}

	return Result{
		Title:     DefaultTitle(query),
		Query:     query,
		Results:   resp.Text,
		Citations: resp.Sources,
	}, nil
}

// Save stores a completed result. An empty title falls back to
// "Untitled Research".
func (s *Service) Save(result Result) (models.SavedResearch, error) {
	title := result.Title
	if title == "" {
		title = "Untitled Research"
	}
	item := models.SavedResearch{
		ID:        uuid.NewString(),
		Title:     title,
		Query:     result.Query,
		Results:   result.Results,
		Citations: result.Citations,
		Timestamp: models.NowMillis(),
	}
	if err := s.store.Save(item); err != nil {
		s.logger.Printf("Failed to save research %s: %v", item.ID, err)
		return item, err
	}
	return item, nil
}

// List returns saved research, newest first.
func (s *Service) List() []models.SavedResearch {
	items, err := s.store.ListAll()
	if err != nil {
		s.logger.Printf("Listing saved research degraded to empty: %v", err)
	}
	return items
}

// Delete removes a saved item; absent ids are a no-op.
func (s *Service) Delete(id string) error {
	return s.store.Delete(id)
}

// DefaultTitle truncates the query to 50 characters with an ellipsis.
func DefaultTitle(query string) string {
	runes := []rune(query)
	if len(runes) <= titleMaxChars {
		return query
	}
	return string(runes[:titleMaxChars]) + "..."
}

// ExportFilename sanitizes the title into a .txt filename, replacing every
// non-alphanumeric character with an underscore.
func ExportFilename(title string) string {
	if title == "" {
		title = "research"
	}
	return filenamePattern.ReplaceAllString(title, "_") + ".txt"
}

// ExportText renders a result as the plain-text export document.
func ExportText(result Result, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Research Query: %s\n\n", result.Query)
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format("1/2/2006"))
	fmt.Fprintf(&b, "Results:\n%s\n\n", result.Results)

	if len(result.Citations) > 0 {
		b.WriteString("Sources & Citations:\n")
		for i, c := range result.Citations {
			title := c.Web.Title
			if title == "" {
				title = c.Web.URI
			}
			fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, title, c.Web.URI)
		}
	}
	return b.String()
}
