package domain

import "time"

// FileDetail describes an uploaded document as returned to clients.
type FileDetail struct {
	DocumentName string `json:"documentName"`
	DocType      string `json:"docType"`
	DocURL       string `json:"docUrl"`
}

// StoredFile is a document persisted in the database rather than in the
// file storage backend.
type StoredFile struct {
	ID           string // ULID
	DocumentName string
	DocType      string
	Data         []byte
	CreatedAt    time.Time
}
