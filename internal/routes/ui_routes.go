package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shobukan/keikoban/internal/api"
	"shobukan/keikoban/internal/config"
	"shobukan/keikoban/internal/constants"
	"shobukan/keikoban/internal/middleware"
	"shobukan/keikoban/web/ui"
)

// RegisterUIRoutes registers the server-rendered pages
func RegisterUIRoutes(r chi.Router, cfg *config.Config, deps *api.Dependencies) {

	uiHandler := ui.NewUIHandler(cfg, deps.Repo.User, deps.Services.Profile, deps.Services.Norm, deps.Services.Ranking)

	authMiddleware := middleware.AuthMiddleware(cfg.IdPSigningSecret, deps.Repo.User, deps.Services.Profile)

	// Default route - members land on the dashboard
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})

	// Auth routes (public)
	r.Get("/auth/login", uiHandler.LoginHandler)
	r.Post("/auth/logout", uiHandler.LogoutHandler)

	// Dashboard routes (require authentication)
	r.Route("/dashboard", func(dashboard chi.Router) {
		dashboard.Use(redirectIfNoSession)
		dashboard.Use(authMiddleware)

		dashboard.Get("/", uiHandler.DashboardHandler)
	})
}

// redirectIfNoSession sends browsers without a session cookie to the
// sign-in page instead of the API's bare 401.
func redirectIfNoSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(constants.SessionCookieName); err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/auth/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
