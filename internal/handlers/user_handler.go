package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ksrami99/SkillSwap/internal/dto"
	"github.com/ksrami99/SkillSwap/internal/middleware"
	"github.com/ksrami99/SkillSwap/internal/services"
	"github.com/ksrami99/SkillSwap/internal/validation"
)

type UserHandler struct {
	userService     *services.UserService
	feedbackService *services.FeedbackService
	validate        *validation.Validator
}

func NewUserHandler(userService *services.UserService, feedbackService *services.FeedbackService, validate *validation.Validator) *UserHandler {
	return &UserHandler{
		userService:     userService,
		feedbackService: feedbackService,
		validate:        validate,
	}
}

// List returns public profiles, filterable with ?skill= and ?availability=.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.FindPublic(c.Query("skill"), c.Query("availability"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetByID returns one profile. An authenticated caller viewing their own id
// bypasses the visibility check; everyone else only reaches public
// profiles. The rating is recomputed from the feedback ledger on each read.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	// Anonymous viewers get uuid.Nil, which never equals a real id.
	viewerID, _ := middleware.UserID(c)

	user, err := h.userService.FindByID(id, viewerID)
	if err != nil {
		return fail(c, err)
	}

	rating, err := h.feedbackService.AverageRating(user.ID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.UserResponse{User: user, Rating: rating})
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return fail(c, err)
	}

	user, err := h.userService.UpdateOwn(userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) ToggleVisibility(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	user, err := h.userService.ToggleVisibility(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) DeleteMe(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.userService.DeleteOwn(userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Account deleted successfully. We're sorry to see you go!"})
}
