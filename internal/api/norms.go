package api

import (
	"net/http"
	"time"

	"shobukan/keikoban/internal/auth"
	"shobukan/keikoban/internal/common"
)

// GetNormProgressHandler handles GET /api/v1/me/norms
func GetNormProgressHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		profile, err := deps.Services.Profile.GetProfile(r.Context(), claims.IdPUserID())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch profile", profileErrorStatus(err))
			return
		}

		progress, err := deps.Services.Norm.GetProgress(r.Context(), claims.UserID(), profile)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to compute progress", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Progress computed", progress)
	}
}

func (h *Handlers) GetNormProgress() http.HandlerFunc {
	return GetNormProgressHandler(h.deps)
}
