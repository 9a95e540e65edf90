package routes

import (
	"github.com/go-chi/chi/v5"

	"shobukan/keikoban/internal/api"
	"shobukan/keikoban/internal/config"
	"shobukan/keikoban/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, cfg *config.Config, handlers *api.Handlers, deps *api.Dependencies) {

	// API v1 routes
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.AuthMiddleware(cfg.IdPSigningSecret, deps.Repo.User, deps.Services.Profile))

		// Own profile and progress
		v1.Get("/me", handlers.GetOwnProfile())
		v1.Patch("/me", handlers.UpdateOwnProfile())
		v1.Get("/me/norms", handlers.GetNormProgress())

		// Own activity log
		v1.Get("/activities", handlers.ListActivities())
		v1.Post("/activities", handlers.CreateActivity())
		v1.Patch("/activities/{activity_id}", handlers.UpdateActivity())
		v1.Delete("/activities/{activity_id}", handlers.DeleteActivity())

		// Rankings
		v1.Get("/rankings/monthly", handlers.GetMonthlyRanking())

		// Management group. The per-target role-hierarchy check runs
		// inside the service; this gate only keeps plain members out.
		v1.Group(func(management chi.Router) {
			management.Use(middleware.IsManagementMiddleware())

			management.Get("/members", handlers.ListMembers())
			management.Get("/members/{user_id}/activities", handlers.ListMemberActivities())
			management.Put("/members/{user_id}/role", handlers.SetMemberRole())
			management.Patch("/members/{user_id}/profile", handlers.UpdateMemberProfile())
		})
	})
}
