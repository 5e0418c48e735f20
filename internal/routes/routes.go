package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/ksrami99/SkillSwap/internal/config"
	"github.com/ksrami99/SkillSwap/internal/handlers"
	"github.com/ksrami99/SkillSwap/internal/middleware"
)

// Setup mounts every route. Public reads stay outside the JWT group;
// GET /users/:id takes the optional-JWT middleware so an owner can see
// their own private profile.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	swapHandler *handlers.SwapHandler,
	feedbackHandler *handlers.FeedbackHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api/v1")

	// General API rate limit: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth routes get a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", middleware.JWTProtected(cfg), authHandler.Me)

	// Public directory reads
	api.Get("/users", userHandler.List)
	api.Get("/users/:id", middleware.OptionalJWT(cfg), userHandler.GetByID)
	api.Get("/feedback/:userId", feedbackHandler.ListForUser)

	// Authenticated profile mutations
	api.Put("/users/me", middleware.JWTProtected(cfg), userHandler.UpdateMe)
	api.Put("/users/me/visibility", middleware.JWTProtected(cfg), userHandler.ToggleVisibility)
	api.Delete("/users/me", middleware.JWTProtected(cfg), userHandler.DeleteMe)

	// Swap lifecycle
	swaps := api.Group("/swaps", middleware.JWTProtected(cfg))
	swaps.Post("/:targetUserId", swapHandler.Create)
	swaps.Get("/", swapHandler.ListMine)
	swaps.Put("/:requestId", swapHandler.Update)
	swaps.Delete("/:requestId", swapHandler.Delete)

	// Feedback submission
	api.Post("/feedback/:userId", middleware.JWTProtected(cfg), feedbackHandler.Submit)

	// Dashboard
	dashboard := api.Group("/dashboard", middleware.JWTProtected(cfg))
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/recent", dashboardHandler.Recent)
}
