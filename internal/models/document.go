package models

import "github.com/google/uuid"

// Document holds the raw bytes of a single uploaded resume. It is created
// per upload and discarded after text extraction; nothing is persisted.
type Document struct {
	ID       uuid.UUID
	Filename string
	Ext      string
	Data     []byte
}
