package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ksrami99/SkillSwap/internal/dto"
	"github.com/ksrami99/SkillSwap/internal/middleware"
	"github.com/ksrami99/SkillSwap/internal/models"
	"github.com/ksrami99/SkillSwap/internal/services"
	"github.com/ksrami99/SkillSwap/internal/validation"
)

type SwapHandler struct {
	swapService *services.SwapService
	validate    *validation.Validator
}

func NewSwapHandler(swapService *services.SwapService, validate *validation.Validator) *SwapHandler {
	return &SwapHandler{swapService: swapService, validate: validate}
}

func (h *SwapHandler) Create(c *fiber.Ctx) error {
	requesterID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	recipientID, err := uuid.Parse(c.Params("targetUserId"))
	if err != nil {
		return badRequest(c, "Invalid target user ID")
	}

	var req dto.CreateSwapRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return fail(c, err)
	}

	request, err := h.swapService.Create(requesterID, recipientID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

func (h *SwapHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	list, err := h.swapService.ListForUser(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *SwapHandler) Update(c *fiber.Ctx) error {
	actorID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateSwapRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return fail(c, err)
	}

	request, err := h.swapService.Transition(c.Params("requestId"), actorID, models.SwapStatus(req.Status))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(request)
}

func (h *SwapHandler) Delete(c *fiber.Ctx) error {
	actorID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.swapService.Delete(c.Params("requestId"), actorID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Swap request deleted successfully"})
}
