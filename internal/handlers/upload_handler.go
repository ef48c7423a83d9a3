package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"resumatch/resume-match/internal/middleware"
	"resumatch/resume-match/internal/models"
	"resumatch/resume-match/internal/services"
)

type UploadHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewUploadHandler(analyzer services.AnalyzerService, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleUpload handles POST /resume/upload. The caller waits for the full
// pipeline: store file, call engine, normalize, persist. The response carries
// the stored document and the complete analysis record.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthenticated",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader == nil || fileHeader.Size == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	jobDescription := c.FormValue("job_description")

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}
	defer file.Close()

	analysis, err := h.analyzer.Submit(c.UserContext(), userID, fileHeader.Filename, file, jobDescription)
	if err != nil {
		return submissionError(c, err)
	}

	response := models.SubmissionResponse{
		Resume:     &analysis.Document,
		Prediction: models.NewAnalysisResponse(analysis),
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// submissionError maps pipeline failures onto distinct statuses. Timeout and
// unavailable both mean the document is stored and resubmittable; a storage
// failure means the file never made it here.
func submissionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrNoFileProvided):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file",
		})
	case errors.Is(err, models.ErrStorageWriteFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store your file, it was not received. Please try again.",
		})
	case errors.Is(err, models.ErrAnalysisTimeout):
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
			"error": "Analysis timed out. Your file was received and can be resubmitted.",
		})
	case errors.Is(err, models.ErrAnalysisUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
