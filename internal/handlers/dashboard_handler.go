package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ksrami99/SkillSwap/internal/middleware"
	"github.com/ksrami99/SkillSwap/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	stats, err := h.dashboardService.Stats(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}

func (h *DashboardHandler) Recent(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}

	requests, err := h.dashboardService.RecentRequests(userID, limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"requests": requests})
}
