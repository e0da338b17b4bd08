package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hirelens/resume-screener/internal/models"
	"hirelens/resume-screener/internal/services"
)

type EvaluateHandler struct {
	evaluator services.EvaluatorService
}

func NewEvaluateHandler(evaluator services.EvaluatorService) *EvaluateHandler {
	return &EvaluateHandler{evaluator: evaluator}
}

// HandleEvaluate handles POST /evaluate: a multipart form with a
// job_description text field and one or more resume file parts. The response
// is a JSON array sorted by descending similarity score.
func (h *EvaluateHandler) HandleEvaluate(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job description or resumes are missing!",
		})
	}

	jobDescription := c.FormValue("job_description")
	files := form.File["resumes"]

	if jobDescription == "" || len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job description or resumes are missing!",
		})
	}

	docs := make([]models.Document, 0, len(files))
	for _, file := range files {
		// Extension check is exact and case-sensitive; any extension other
		// than .pdf or .docx aborts the whole request.
		ext := filepath.Ext(file.Filename)
		if ext != ".pdf" && ext != ".docx" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Unsupported file type: %s", ext),
			})
		}

		data, err := readFilePart(file)
		if err != nil {
			// Treated like an extraction failure: the resume is scored as
			// empty rather than failing the request.
			log.Printf("⚠️  Failed to read uploaded file %s: %v", file.Filename, err)
			data = nil
		}

		docs = append(docs, models.Document{
			ID:       uuid.New(),
			Filename: file.Filename,
			Ext:      ext,
			Data:     data,
		})
	}

	results, err := h.evaluator.Evaluate(jobDescription, docs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to evaluate resumes: %v", err),
		})
	}

	return c.JSON(models.NewEvaluateResponse(results))
}

func readFilePart(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}
