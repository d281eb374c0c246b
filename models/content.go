package models

// Content role values expected by the inference API.
const (
	ContentRoleUser  = "user"
	ContentRoleModel = "model"
)

// Content is one turn's worth of role-tagged parts submitted to the
// inference API.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// Part is either a text part or an inline binary attachment.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData carries base64-encoded bytes with their mime type.
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// TextContent builds a single-part text content block.
func TextContent(role, text string) Content {
	return Content{Role: role, Parts: []Part{{Text: text}}}
}
