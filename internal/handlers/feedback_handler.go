package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ksrami99/SkillSwap/internal/dto"
	"github.com/ksrami99/SkillSwap/internal/middleware"
	"github.com/ksrami99/SkillSwap/internal/services"
	"github.com/ksrami99/SkillSwap/internal/validation"
)

type FeedbackHandler struct {
	feedbackService *services.FeedbackService
	validate        *validation.Validator
}

func NewFeedbackHandler(feedbackService *services.FeedbackService, validate *validation.Validator) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService, validate: validate}
}

func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	fromID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	toID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	var req dto.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return fail(c, err)
	}

	feedback, err := h.feedbackService.Submit(fromID, toID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(feedback)
}

// ListForUser is a public read; an empty list is a normal response.
func (h *FeedbackHandler) ListForUser(c *fiber.Ctx) error {
	toID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	feedbacks, err := h.feedbackService.ListForUser(toID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"feedbacks": feedbacks})
}
