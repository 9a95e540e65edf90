package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"shobukan/keikoban/internal/auth"
	"shobukan/keikoban/internal/common"
	"shobukan/keikoban/internal/db/repositories"
	"shobukan/keikoban/internal/models/dtos"
	"shobukan/keikoban/internal/services"
)

// ListActivitiesHandler handles GET /api/v1/activities
func ListActivitiesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

		list, err := deps.Services.Activity.ListActivities(
			r.Context(),
			claims.UserID(),
			r.URL.Query().Get("from"),
			r.URL.Query().Get("to"),
			page,
			pageSize,
		)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list activities", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Activities fetched", list)
	}
}

// CreateActivityHandler handles POST /api/v1/activities
func CreateActivityHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.CreateActivityReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		activity, err := deps.Services.Activity.CreateActivity(r.Context(), claims.UserID(), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to log activity", http.StatusBadRequest)
			return
		}

		deps.Metrics.ActivitiesLoggedTotal.Inc()
		common.RespondSuccess(w, initTime, "Activity logged", activity, http.StatusCreated)
	}
}

// UpdateActivityHandler handles PATCH /api/v1/activities/{activity_id}
func UpdateActivityHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.UpdateActivityReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		activityID := chi.URLParam(r, "activity_id")
		activity, err := deps.Services.Activity.UpdateActivity(r.Context(), claims.UserID(), claims.Role(), activityID, req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update activity", activityErrorStatus(err))
			return
		}

		common.RespondSuccess(w, initTime, "Activity updated", activity)
	}
}

// DeleteActivityHandler handles DELETE /api/v1/activities/{activity_id}
func DeleteActivityHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		activityID := chi.URLParam(r, "activity_id")
		if err := deps.Services.Activity.DeleteActivity(r.Context(), claims.UserID(), claims.Role(), activityID); err != nil {
			common.RespondError(w, initTime, err, "Failed to delete activity", activityErrorStatus(err))
			return
		}

		common.RespondSuccess(w, initTime, "Activity deleted", nil)
	}
}

// activityErrorStatus maps activity-service failures onto HTTP codes.
func activityErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidPeriod):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ============================================================================
// Handler Methods (Wrapped for DI pattern)
// ============================================================================

func (h *Handlers) ListActivities() http.HandlerFunc {
	return ListActivitiesHandler(h.deps)
}

func (h *Handlers) CreateActivity() http.HandlerFunc {
	return CreateActivityHandler(h.deps)
}

func (h *Handlers) UpdateActivity() http.HandlerFunc {
	return UpdateActivityHandler(h.deps)
}

func (h *Handlers) DeleteActivity() http.HandlerFunc {
	return DeleteActivityHandler(h.deps)
}
