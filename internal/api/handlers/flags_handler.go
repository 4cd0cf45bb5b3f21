package handlers

import (
	"SnackStock-Backend/domain"
	"SnackStock-Backend/internal/api/presenters"
	"SnackStock-Backend/pkg/flags"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FlagsHandler interface {
		GetFlag(c *fiber.Ctx) error
		SetFlag(c *fiber.Ctx) error
		RemoveFlag(c *fiber.Ctx) error
	}

	flagsHandler struct {
		flagsService flags.FlagsService
		validator    *validator.Validate
	}
)

func NewFlagsHandler(flagsService flags.FlagsService, validator *validator.Validate) FlagsHandler {
	return &flagsHandler{
		flagsService: flagsService,
		validator:    validator,
	}
}

func (h *flagsHandler) GetFlag(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	key := c.Params("key")

	res, err := h.flagsService.GetFlag(c.Context(), key, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFlag, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFlag)
}

func (h *flagsHandler) SetFlag(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	key := c.Params("key")
	req := new(domain.SetFlagRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetFlag, err)
	}

	if err := h.flagsService.SetFlag(c.Context(), key, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetFlag, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetFlag)
}

func (h *flagsHandler) RemoveFlag(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	key := c.Params("key")

	if err := h.flagsService.RemoveFlag(c.Context(), key, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveFlag, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFlag)
}
