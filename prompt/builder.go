// Package prompt assembles the bounded, role-tagged conversation context
// submitted to the inference API from a session's history and the current
// turn's query and documents.
package prompt

import (
	"fmt"
	"log"
	"strings"

	"github.com/ub-intelligence/dharmabot/models"
)

// Build converts the pre-submission history plus the current turn into the
// ordered content-block sequence for the inference call. The result order
// is the conversation order and is never reordered or deduplicated.
func Build(history []models.ChatMessage, currentQuery string, docs []models.DocumentInfoForAI) []models.Content {
	contents := make([]models.Content, 0, len(history)+1)

	for i, msg := range history {
		switch m := msg.(type) {
		case *models.UserQueryMessage:
			contents = append(contents, models.TextContent(models.ContentRoleUser, renderUserTurn(m)))
		case *models.AIResponseMessage:
			contents = append(contents, models.TextContent(models.ContentRoleModel, renderAITurn(m)))
		case *models.SystemMessage:
			contents = append(contents, models.TextContent(models.ContentRoleModel, "System Note: "+m.Text))
		default:
			log.Printf("Warning: skipping history message %d with unrecognized role %q", i, msg.MessageRole())
		}
	}

	contents = append(contents, buildCurrentTurn(currentQuery, docs))
	return contents
}

func renderUserTurn(m *models.UserQueryMessage) string {
	text := "Query: " + m.QueryText
	if len(m.FilesInfo) > 0 {
		names := make([]string, len(m.FilesInfo))
		for i, f := range m.FilesInfo {
			names[i] = f.Name
		}
		text += fmt.Sprintf("\n(Attached files: %s)", strings.Join(names, ", "))
	}
	return text
}

func renderAITurn(m *models.AIResponseMessage) string {
	text := m.Text
	if len(m.Sources) > 0 {
		var b strings.Builder
		b.WriteString(text)
		b.WriteString("\n\nSources:\n")
		for i, src := range m.Sources {
			if src.Web.Title != "" {
				fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, src.Web.Title, src.Web.URI)
			} else {
				fmt.Fprintf(&b, "%d. %s\n", i+1, src.Web.URI)
			}
		}
		text = strings.TrimRight(b.String(), "\n")
	}
	return text
}

// buildCurrentTurn produces the final user block: the query alone, or the
// query plus the document analysis instruction and the delimited inline
// documents.
func buildCurrentTurn(query string, docs []models.DocumentInfoForAI) models.Content {
	if len(docs) == 0 {
		return models.TextContent(models.ContentRoleUser, query)
	}

	parts := []models.Part{{Text: query + analysisInstruction(query, docs)}}

	for _, doc := range docs {
		parts = append(parts, models.Part{Text: documentStartMarker(doc.Name)})
		parts = append(parts, documentContentParts(doc)...)
		parts = append(parts, models.Part{Text: documentEndMarker(doc.Name)})
	}

	return models.Content{Role: models.ContentRoleUser, Parts: parts}
}

func documentStartMarker(name string) string {
	return fmt.Sprintf("--- DOCUMENT START: %s ---", name)
}

func documentEndMarker(name string) string {
	return fmt.Sprintf("--- DOCUMENT END: %s ---", name)
}

// documentContentParts renders a single document's inline content. A file
// with neither text content nor image pages contributes no parts; its
// markers still bracket the empty region.
func documentContentParts(doc models.DocumentInfoForAI) []models.Part {
	var parts []models.Part

	if doc.TextContent != "" {
		if data, mime, ok := parseDataURL(doc.TextContent); ok {
			mimeType := doc.MimeType
			if mimeType == "" {
				mimeType = mime
			}
			parts = append(parts, models.Part{
				InlineData: &models.InlineData{MimeType: mimeType, Data: data},
			})
		} else {
			parts = append(parts, models.Part{Text: doc.TextContent})
		}
	}

	for i, page := range doc.ImagePageDataURLs {
		data, mime, ok := parseDataURL(page)
		if !ok {
			log.Printf("Warning: skipping malformed image page %d of document %q", i+1, doc.Name)
			continue
		}
		parts = append(parts, models.Part{
			Text: fmt.Sprintf("Page %d of %s:", i+1, doc.Name),
		})
		parts = append(parts, models.Part{
			InlineData: &models.InlineData{MimeType: mime, Data: data},
		})
	}

	return parts
}

// parseDataURL splits a data URL into its base64 payload and mime type.
// Returns ok=false for anything that is not a base64 data URL.
func parseDataURL(s string) (data, mimeType string, ok bool) {
	if !strings.HasPrefix(s, "data:") {
		return "", "", false
	}
	idx := strings.Index(s, ",")
	if idx < 0 {
		return "", "", false
	}
	meta := s[len("data:"):idx]
	if !strings.HasSuffix(meta, ";base64") {
		return "", "", false
	}
	return s[idx+1:], strings.TrimSuffix(meta, ";base64"), true
}
