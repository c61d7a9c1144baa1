package documents

import "time"

// Document represents an uploaded résumé owned by a user. Uploads arrive as
// PDF/DOCX files or as pasted plain text; both are stored through the object
// store and extracted text is cached under ExtractedTextKey once produced.
type Document struct {
	ID               string
	UserID           string
	FileName         string
	MimeType         string
	SizeBytes        int64
	StorageProvider  string
	StorageKey       string
	ExtractedTextKey string
	ExtractedAt      *time.Time
	CreatedAt        time.Time
}
