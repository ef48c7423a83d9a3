package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/resume-match/internal/middleware"
	"resumatch/resume-match/internal/models"
	"resumatch/resume-match/internal/repositories"
)

const defaultListLimit = 50

type ResultHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewResultHandler(analysisRepo repositories.AnalysisRepository) *ResultHandler {
	return &ResultHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleListMine handles GET /resume/predictions/me, newest first.
func (h *ResultHandler) HandleListMine(c *fiber.Ctx) error {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthenticated",
		})
	}

	limit := c.QueryInt("limit", defaultListLimit)
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	analyses, err := h.analysisRepo.FindLatestByUser(userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load predictions",
		})
	}

	responses := make([]*models.AnalysisResponse, 0, len(analyses))
	for i := range analyses {
		responses = append(responses, models.NewAnalysisResponse(&analyses[i]))
	}

	return c.JSON(responses)
}

// HandleGetResult handles GET /resume/prediction/:id. A record owned by a
// different principal is indistinguishable from a missing one.
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthenticated",
		})
	}

	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid prediction ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load prediction",
		})
	}

	if analysis.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	}

	return c.JSON(models.NewAnalysisResponse(analysis))
}
