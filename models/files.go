package models

// FileStatus tracks the extraction lifecycle of an attached file.
type FileStatus string

const (
	FileStatusPending   FileStatus = "pending"
	FileStatusProcessed FileStatus = "processed"
	FileStatusError     FileStatus = "error"
)

// ProcessedFile is an ephemeral record of a user-attached file. It is
// consumed once at submission time and discarded after the message is
// built; only its metadata survives in the session as AttachedFileInfo.
type ProcessedFile struct {
	ID                string
	Name              string
	MimeType          string
	Size              int64
	Status            FileStatus
	TextContent       string
	ImagePageDataURLs []string
}

// Info projects the persistent metadata of a processed file.
func (f ProcessedFile) Info() AttachedFileInfo {
	return AttachedFileInfo{Name: f.Name, MimeType: f.MimeType, Size: f.Size}
}

// DocumentInfoForAI is the transient projection of a processed file that is
// handed to the context builder. Only files with status "processed" are
// ever projected.
type DocumentInfoForAI struct {
	Name              string
	MimeType          string
	TextContent       string
	ImagePageDataURLs []string
}

// DocumentsForAI projects the processed subset of files. Pending and
// errored files are dropped.
func DocumentsForAI(files []ProcessedFile) []DocumentInfoForAI {
	var docs []DocumentInfoForAI
	for _, f := range files {
		if f.Status != FileStatusProcessed {
			continue
		}
		docs = append(docs, DocumentInfoForAI{
			Name:              f.Name,
			MimeType:          f.MimeType,
			TextContent:       f.TextContent,
			ImagePageDataURLs: f.ImagePageDataURLs,
		})
	}
	return docs
}
