package prompt

import (
	"fmt"
	"strings"

	"github.com/ub-intelligence/dharmabot/models"
)

// caseLawKeywords mark queries that ask about judgments or case law; they
// switch the document analysis instruction into judgment mode.
var caseLawKeywords = []string{
	"judgment",
	"judgement",
	"case law",
	"ruling",
	"precedent",
	"verdict",
}

// analysisInstruction generates the document analysis block appended to
// the current query when files are attached.
func analysisInstruction(query string, docs []models.DocumentInfoForAI) string {
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n\nI have attached the following document(s): %s.\n", strings.Join(names, ", "))
	b.WriteString("For each document, provide:\n")
	b.WriteString("1. A brief overview of its contents.\n")
	b.WriteString("2. Its relevance to my query above.\n")
	b.WriteString("3. The key findings or provisions it contains.\n")

	if len(docs) > 1 {
		b.WriteString("Since multiple documents are attached, also compare them and highlight material differences and commonalities.\n")
	}

	if isCaseLawQuery(query) {
		b.WriteString("Where a document is a judgment or court order, identify the court, the parties, the legal issues framed, the holding, and the precedential value under Indian law.\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func isCaseLawQuery(query string) bool {
	lower := strings.ToLower(query)
	for _, kw := range caseLawKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
