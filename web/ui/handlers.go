package ui

import (
	"net/http"
	"time"

	"shobukan/keikoban/internal/auth"
	"shobukan/keikoban/internal/config"
	"shobukan/keikoban/internal/constants"
	"shobukan/keikoban/internal/db/repositories"
	"shobukan/keikoban/internal/logging"
	"shobukan/keikoban/internal/services"
)

// UIHandler manages all UI routes
type UIHandler struct {
	cfg      *config.Config
	users    *repositories.UserRepository
	profiles *services.ProfileService
	norms    *services.NormService
	rankings *services.RankingService
}

// NewUIHandler creates a new UI handler
func NewUIHandler(cfg *config.Config, users *repositories.UserRepository, profiles *services.ProfileService, norms *services.NormService, rankings *services.RankingService) *UIHandler {
	return &UIHandler{
		cfg:      cfg,
		users:    users,
		profiles: profiles,
		norms:    norms,
		rankings: rankings,
	}
}

// LoginHandler renders the sign-in page with a link to the hosted login flow
func (h *UIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title":    "Sign in",
		"LoginURL": h.cfg.IdPLoginURL,
	}
	RenderTemplate(w, "login.html", data)
}

// LogoutHandler clears the session cookie and sends the member back to sign-in
func (h *UIHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/auth/login", http.StatusFound)
}

// DashboardHandler renders the member dashboard with norm progress and the monthly ranking
func (h *UIHandler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUserClaims(r.Context())
	if claims == nil {
		http.Redirect(w, r, "/auth/login", http.StatusFound)
		return
	}

	data := map[string]interface{}{
		"Title":    "Dashboard",
		"Username": claims.Username(),
		"Role":     claims.Role().Label(),
	}

	profile, err := h.profiles.GetProfile(r.Context(), claims.IdPUserID())
	if err != nil {
		logging.Warn("Dashboard profile lookup failed", "user_id", claims.UserID(), "error", err.Error())
	} else {
		data["Grade"] = constants.TranslateGrade(profile.Grade)
		data["Year"] = constants.TranslateYear(profile.Year)

		progress, err := h.norms.GetProgress(r.Context(), claims.UserID(), profile)
		if err != nil {
			logging.Warn("Dashboard norm progress failed", "user_id", claims.UserID(), "error", err.Error())
		} else {
			data["Progress"] = progress
		}
	}

	ranking, err := h.rankings.GetMonthlyRanking(r.Context(), claims.UserID(), time.Now())
	if err != nil {
		logging.Warn("Dashboard ranking lookup failed", "user_id", claims.UserID(), "error", err.Error())
	} else {
		data["Ranking"] = ranking
	}

	RenderTemplate(w, "dashboard.html", data)
}
