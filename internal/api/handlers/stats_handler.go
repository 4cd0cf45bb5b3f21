package handlers

import (
	"SnackStock-Backend/domain"
	"SnackStock-Backend/internal/api/presenters"
	"SnackStock-Backend/pkg/stats"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	StatsHandler interface {
		RecordConsumption(c *fiber.Ctx) error
		GetStatistics(c *fiber.Ctx) error
	}

	statsHandler struct {
		statsService stats.StatsService
		validator    *validator.Validate
	}
)

func NewStatsHandler(statsService stats.StatsService, validator *validator.Validate) StatsHandler {
	return &statsHandler{
		statsService: statsService,
		validator:    validator,
	}
}

func (h *statsHandler) RecordConsumption(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RecordConsumptionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordConsumption, err)
	}

	if err := h.statsService.RecordConsumption(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordConsumption, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessRecordConsumption)
}

func (h *statsHandler) GetStatistics(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.statsService.GetStatistics(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStatistics, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStatistics)
}
