package prompt

import (
	"strings"
	"testing"

	"github.com/ub-intelligence/dharmabot/models"
)

func TestBuild_EmptyHistoryYieldsSingleQueryBlock(t *testing.T) {
	contents := Build(nil, "What is anticipatory bail?", nil)

	if len(contents) != 1 {
		t.Fatalf("Expected 1 content block, got %d", len(contents))
	}
	if contents[0].Role != models.ContentRoleUser {
		t.Errorf("Current turn should carry the user role, got %s", contents[0].Role)
	}
	if contents[0].Parts[0].Text != "What is anticipatory bail?" {
		t.Errorf("Query without documents should be verbatim, got %q", contents[0].Parts[0].Text)
	}
}

func TestBuild_HistoryMappingAndOrder(t *testing.T) {
	history := []models.ChatMessage{
		models.NewUserQueryMessage("first question", nil),
		models.NewAIResponseMessage("first answer", nil, ""),
		models.NewSystemMessage("context switched"),
	}

	contents := Build(history, "second question", nil)
	if len(contents) != 4 {
		t.Fatalf("Expected 4 blocks, got %d", len(contents))
	}

	if contents[0].Role != models.ContentRoleUser || contents[0].Parts[0].Text != "Query: first question" {
		t.Errorf("User turn mapping wrong: %+v", contents[0])
	}
	if contents[1].Role != models.ContentRoleModel || contents[1].Parts[0].Text != "first answer" {
		t.Errorf("AI turn mapping wrong: %+v", contents[1])
	}
	if contents[2].Role != models.ContentRoleModel || contents[2].Parts[0].Text != "System Note: context switched" {
		t.Errorf("System turn mapping wrong: %+v", contents[2])
	}
	if contents[3].Parts[0].Text != "second question" {
		t.Errorf("Current query should close the sequence, got %q", contents[3].Parts[0].Text)
	}
}

func TestBuild_UserTurnListsAttachedFiles(t *testing.T) {
	history := []models.ChatMessage{
		models.NewUserQueryMessage("review these", []models.AttachedFileInfo{
			{Name: "lease.pdf"}, {Name: "notice.txt"},
		}),
	}

	contents := Build(history, "next", nil)
	want := "Query: review these\n(Attached files: lease.pdf, notice.txt)"
	if contents[0].Parts[0].Text != want {
		t.Errorf("Expected %q, got %q", want, contents[0].Parts[0].Text)
	}
}

func TestBuild_AITurnAppendsSources(t *testing.T) {
	history := []models.ChatMessage{
		models.NewAIResponseMessage("grounded answer", []models.GroundingChunk{
			{Web: models.WebSource{URI: "https://a.in", Title: "Act Text"}},
			{Web: models.WebSource{URI: "https://b.in"}},
		}, ""),
	}

	contents := Build(history, "next", nil)
	text := contents[0].Parts[0].Text
	if !strings.Contains(text, "Sources:\n1. Act Text (https://a.in)") {
		t.Errorf("Titled source should render title and URI, got %q", text)
	}
	if !strings.Contains(text, "2. https://b.in") {
		t.Errorf("Untitled source should render URI alone, got %q", text)
	}
}

func TestBuild_UnknownHistoryMessageSkipped(t *testing.T) {
	history := []models.ChatMessage{
		&models.UnknownMessage{ID: "x", Role: "tool", Timestamp: 1, Raw: []byte(`{"role":"tool"}`)},
		models.NewUserQueryMessage("known", nil),
	}

	contents := Build(history, "current", nil)
	if len(contents) != 2 {
		t.Fatalf("Unknown variant should be skipped, got %d blocks", len(contents))
	}
}

func TestBuild_DocumentsWrappedInMarkers(t *testing.T) {
	docs := []models.DocumentInfoForAI{
		{Name: "contract.txt", TextContent: "the clauses"},
	}

	contents := Build(nil, "analyze this", docs)
	if len(contents) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(contents))
	}
	parts := contents[0].Parts
	if len(parts) != 4 {
		t.Fatalf("Expected query+start+content+end parts, got %d", len(parts))
	}
	if !strings.HasPrefix(parts[0].Text, "analyze this") {
		t.Errorf("First part should open with the query, got %q", parts[0].Text)
	}
	if !strings.Contains(parts[0].Text, "I have attached the following document(s): contract.txt") {
		t.Error("Analysis instruction should name the documents")
	}
	if parts[1].Text != "--- DOCUMENT START: contract.txt ---" {
		t.Errorf("Wrong start marker: %q", parts[1].Text)
	}
	if parts[2].Text != "the clauses" {
		t.Errorf("Document text should be inline, got %q", parts[2].Text)
	}
	if parts[3].Text != "--- DOCUMENT END: contract.txt ---" {
		t.Errorf("Wrong end marker: %q", parts[3].Text)
	}
}

func TestBuild_EmptyDocumentKeepsMarkersOnly(t *testing.T) {
	docs := []models.DocumentInfoForAI{{Name: "blank.pdf"}}

	contents := Build(nil, "q", docs)
	parts := contents[0].Parts
	if len(parts) != 3 {
		t.Fatalf("Empty document should contribute only markers, got %d parts", len(parts))
	}
	if parts[1].Text != "--- DOCUMENT START: blank.pdf ---" || parts[2].Text != "--- DOCUMENT END: blank.pdf ---" {
		t.Error("Markers should still bracket the empty region")
	}
}

func TestBuild_DataURLBecomesInlineData(t *testing.T) {
	docs := []models.DocumentInfoForAI{
		{Name: "scan.pdf", MimeType: "application/pdf", TextContent: "data:application/pdf;base64,AAAA"},
	}

	contents := Build(nil, "q", docs)
	parts := contents[0].Parts
	if parts[2].InlineData == nil {
		t.Fatal("Data URL should convert to inline data")
	}
	if parts[2].InlineData.Data != "AAAA" {
		t.Errorf("Data URL prefix should be stripped, got %q", parts[2].InlineData.Data)
	}
	if parts[2].InlineData.MimeType != "application/pdf" {
		t.Errorf("Unexpected mime type: %q", parts[2].InlineData.MimeType)
	}
}

func TestBuild_ImagePagesGetCaptions(t *testing.T) {
	docs := []models.DocumentInfoForAI{
		{Name: "deed.pdf", ImagePageDataURLs: []string{
			"data:image/png;base64,UUUU",
			"data:image/png;base64,VVVV",
		}},
	}

	contents := Build(nil, "q", docs)
	parts := contents[0].Parts
	// query, start, (caption+image)*2, end
	if len(parts) != 7 {
		t.Fatalf("Expected 7 parts, got %d", len(parts))
	}
	if parts[2].Text != "Page 1 of deed.pdf:" {
		t.Errorf("Wrong first caption: %q", parts[2].Text)
	}
	if parts[3].InlineData == nil || parts[3].InlineData.Data != "UUUU" {
		t.Error("First page image should follow its caption")
	}
	if parts[4].Text != "Page 2 of deed.pdf:" {
		t.Errorf("Wrong second caption: %q", parts[4].Text)
	}
}

func TestBuild_MultipleDocumentsAddComparison(t *testing.T) {
	docs := []models.DocumentInfoForAI{
		{Name: "a.txt", TextContent: "a"},
		{Name: "b.txt", TextContent: "b"},
	}

	contents := Build(nil, "compare", docs)
	instruction := contents[0].Parts[0].Text
	if !strings.Contains(instruction, "compare them and highlight material differences") {
		t.Error("Multi-document instruction should request a comparison")
	}
}

func TestBuild_CaseLawQueryAddsJudgmentMode(t *testing.T) {
	docs := []models.DocumentInfoForAI{{Name: "order.pdf", TextContent: "x"}}

	withKeyword := Build(nil, "summarize this judgment", docs)
	if !strings.Contains(withKeyword[0].Parts[0].Text, "precedential value under Indian law") {
		t.Error("Judgment query should enable judgment-mode analysis")
	}

	without := Build(nil, "summarize this letter", docs)
	if strings.Contains(without[0].Parts[0].Text, "precedential value under Indian law") {
		t.Error("Plain query should not enable judgment-mode analysis")
	}
}

func TestParseDataURL(t *testing.T) {
	data, mime, ok := parseDataURL("data:image/png;base64,QUJD")
	if !ok || data != "QUJD" || mime != "image/png" {
		t.Errorf("Valid data URL failed: data=%q mime=%q ok=%v", data, mime, ok)
	}

	for _, bad := range []string{"plain text", "data:no-comma", "data:image/png,notbase64encoded"} {
		if _, _, ok := parseDataURL(bad); ok {
			t.Errorf("%q should not parse as a base64 data URL", bad)
		}
	}
}
