package services

import (
	"bytes"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"hirelens/resume-screener/internal/models"
)

type ExtractorService interface {
	// ExtractText pulls raw text out of an uploaded document. Extraction
	// failures are tolerated: a page that fails to parse contributes no text,
	// and a document that yields nothing at all comes back as the empty
	// string rather than an error, to be scored as zero similarity.
	ExtractText(doc models.Document) string
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

func (e *extractorService) ExtractText(doc models.Document) string {
	switch doc.Ext {
	case ".pdf":
		return e.extractPDF(doc)
	case ".docx":
		return e.extractDOCX(doc)
	default:
		// Unsupported extensions are rejected by the handler before this
		// point; anything else contributes no text.
		log.Printf("⚠️  Unsupported extension %q reached extractor for %s", doc.Ext, doc.Filename)
		return ""
	}
}

func (e *extractorService) extractPDF(doc models.Document) string {
	reader, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		log.Printf("⚠️  Failed to open PDF %s: %v", doc.Filename, err)
		return ""
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("⚠️  Failed to extract page %d of %s: %v", pageIndex, doc.Filename, err)
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return strings.TrimSpace(textBuilder.String())
}

func (e *extractorService) extractDOCX(doc models.Document) string {
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		log.Printf("⚠️  Failed to open DOCX %s: %v", doc.Filename, err)
		return ""
	}
	defer reader.Close()

	return strings.TrimSpace(reader.Editable().GetContent())
}
