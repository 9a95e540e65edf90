package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shobukan/keikoban/internal/auth"
	"shobukan/keikoban/internal/common"
	"shobukan/keikoban/internal/db/repositories"
	"shobukan/keikoban/internal/models/dtos"
	"shobukan/keikoban/internal/models/entities"
	"shobukan/keikoban/internal/services"
)

// GetOwnProfileHandler handles GET /api/v1/me
func GetOwnProfileHandler(deps *Dependencies) http.HandlerFunc {
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

		user, err := deps.Repo.User.GetByID(r.Context(), claims.UserID())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch member", profileErrorStatus(err))
			return
		}

		resp := services.BuildProfileResponse(user, profile)
		common.RespondSuccess(w, initTime, "Profile fetched", resp)
	}
}

// UpdateOwnProfileHandler handles PATCH /api/v1/me
//
// Members may only touch the fields in UpdateOwnProfileReq; grade,
// promotion date, and role stay management-only.
func UpdateOwnProfileHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.UpdateOwnProfileReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		profile, err := deps.Services.Profile.GetProfile(r.Context(), claims.IdPUserID())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch profile", profileErrorStatus(err))
			return
		}

		if req.Year != nil {
			profile.Year = *req.Year
		}
		if req.JoinedAt != nil {
			profile.JoinedAt = *req.JoinedAt
		}

		if err := deps.Services.Profile.UpdateProfile(r.Context(), claims.IdPUserID(), profile); err != nil {
			common.RespondError(w, initTime, err, "Failed to update profile", profileErrorStatus(err))
			return
		}

		common.RespondSuccess(w, initTime, "Profile updated", nil)
	}
}

// profileErrorStatus maps profile failures onto HTTP codes.
func profileErrorStatus(err error) int {
	var validationErr *entities.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handlers) GetOwnProfile() http.HandlerFunc {
	return GetOwnProfileHandler(h.deps)
}

func (h *Handlers) UpdateOwnProfile() http.HandlerFunc {
	return UpdateOwnProfileHandler(h.deps)
}
