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
	"shobukan/keikoban/internal/constants"
	"shobukan/keikoban/internal/db/repositories"
	"shobukan/keikoban/internal/models/dtos"
)

// ListMembersHandler handles GET /api/v1/members
func ListMembersHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		members, err := deps.Services.MemberMgmt.ListMembers(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list members", http.StatusInternalServerError)
			return
		}

		deps.Metrics.MembersActive.Set(float64(len(members)))
		common.RespondSuccess(w, initTime, "Members fetched", members)
	}
}

// ListMemberActivitiesHandler handles GET /api/v1/members/{user_id}/activities
func ListMemberActivitiesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		userID := chi.URLParam(r, "user_id")
		if _, err := deps.Repo.User.GetByID(r.Context(), userID); err != nil {
			common.RespondError(w, initTime, err, "Member not found", memberErrorStatus(err))
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

		list, err := deps.Services.Activity.ListActivities(
			r.Context(),
			userID,
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

// SetMemberRoleHandler handles PUT /api/v1/members/{user_id}/role
func SetMemberRoleHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.SetRoleReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		requested := constants.ParseRole(req.Role)
		if !requested.IsValid() {
			common.RespondError(w, initTime, nil, "Unknown role", http.StatusBadRequest)
			return
		}

		target, err := deps.Repo.User.GetByID(r.Context(), chi.URLParam(r, "user_id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Member not found", memberErrorStatus(err))
			return
		}

		err = deps.Services.MemberMgmt.SetMemberRole(r.Context(), claims.Role(), target.IdPUserID, requested)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to set role", memberErrorStatus(err))
			return
		}

		common.RespondSuccess(w, initTime, "Role updated", nil)
	}
}

// UpdateMemberProfileHandler handles PATCH /api/v1/members/{user_id}/profile
func UpdateMemberProfileHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.UpdateMemberProfileReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		target, err := deps.Repo.User.GetByID(r.Context(), chi.URLParam(r, "user_id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Member not found", memberErrorStatus(err))
			return
		}

		err = deps.Services.MemberMgmt.UpdateMemberProfile(r.Context(), claims.Role(), target.IdPUserID, req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update member profile", memberErrorStatus(err))
			return
		}

		common.RespondSuccess(w, initTime, "Member profile updated", nil)
	}
}

// memberErrorStatus maps member-management failures onto HTTP codes.
func memberErrorStatus(err error) int {
	var forbidden *auth.ForbiddenError
	switch {
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	default:
		return profileErrorStatus(err)
	}
}

func (h *Handlers) ListMembers() http.HandlerFunc {
	return ListMembersHandler(h.deps)
}

func (h *Handlers) ListMemberActivities() http.HandlerFunc {
	return ListMemberActivitiesHandler(h.deps)
}

func (h *Handlers) SetMemberRole() http.HandlerFunc {
	return SetMemberRoleHandler(h.deps)
}

func (h *Handlers) UpdateMemberProfile() http.HandlerFunc {
	return UpdateMemberProfileHandler(h.deps)
}
