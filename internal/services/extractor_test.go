package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hirelens/resume-screener/internal/models"
)

// Extraction is empty-tolerant: a document that cannot be parsed yields "" so
// the pipeline scores it as zero similarity instead of failing the request.
func TestExtractTextUnparseableDocuments(t *testing.T) {
	extractor := NewExtractorService()

	tests := []struct {
		name string
		doc  models.Document
	}{
		{
			name: "garbage pdf",
			doc:  models.Document{ID: uuid.New(), Filename: "bad.pdf", Ext: ".pdf", Data: []byte("not a pdf")},
		},
		{
			name: "empty pdf",
			doc:  models.Document{ID: uuid.New(), Filename: "empty.pdf", Ext: ".pdf", Data: nil},
		},
		{
			name: "garbage docx",
			doc:  models.Document{ID: uuid.New(), Filename: "bad.docx", Ext: ".docx", Data: []byte("not a zip archive")},
		},
		{
			name: "unknown extension",
			doc:  models.Document{ID: uuid.New(), Filename: "notes.txt", Ext: ".txt", Data: []byte("plain text")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "", extractor.ExtractText(tt.doc))
		})
	}
}
