package services

import (
	"context"

	"shobukan/keikoban/internal/auth"
	"shobukan/keikoban/internal/constants"
	"shobukan/keikoban/internal/db/repositories"
	"shobukan/keikoban/internal/logging"
	"shobukan/keikoban/internal/models/dtos"
	"shobukan/keikoban/internal/models/entities"
	gormModels "shobukan/keikoban/internal/models/gorm"
)

// MemberManagementService implements the administrator surface: member
// listing and role/profile mutation. Every mutation passes the
// role-hierarchy gate against both the target's current role and the
// role being assigned.
type MemberManagementService struct {
	userRepo *repositories.UserRepository
	profiles *ProfileService
}

func NewMemberManagementService(userRepo *repositories.UserRepository, profiles *ProfileService) *MemberManagementService {
	return &MemberManagementService{userRepo: userRepo, profiles: profiles}
}

// ListMembers returns every active member with their profile attached.
// Members whose metadata fails validation are listed without a profile
// rather than breaking the whole page.
func (s *MemberManagementService) ListMembers(ctx context.Context) ([]dtos.MemberSummary, error) {
	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dtos.MemberSummary, 0, len(users))
	for i := range users {
		user := &users[i]
		summary := dtos.MemberSummary{
			UserID:    user.ID,
			IdPUserID: user.IdPUserID,
			Username:  user.Username,
			IsActive:  user.IsActive,
		}

		profile, err := s.profiles.GetProfile(ctx, user.IdPUserID)
		if err != nil {
			logging.Warn("Skipping profile for member list",
				"user_id", user.ID,
				"error", err.Error(),
			)
		} else {
			resp := BuildProfileResponse(user, profile)
			summary.Profile = &resp
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// SetMemberRole assigns a new role to the target member, subject to the
// hierarchy gate.
func (s *MemberManagementService) SetMemberRole(ctx context.Context, actorRole constants.ClubRole, targetIdPUserID string, newRole constants.ClubRole) error {
	profile, err := s.profiles.GetProfile(ctx, targetIdPUserID)
	if err != nil {
		return err
	}

	decision := auth.Authorize(actorRole, profile.RoleValue(), newRole)
	if !decision.Allowed {
		return &auth.ForbiddenError{Reason: decision.Reason}
	}

	profile.Role = newRole.String()
	return s.profiles.UpdateProfile(ctx, targetIdPUserID, profile)
}

// UpdateMemberProfile changes profile fields of another member. The
// role is untouched, so the gate compares the actor against the
// target's current role on both sides.
func (s *MemberManagementService) UpdateMemberProfile(ctx context.Context, actorRole constants.ClubRole, targetIdPUserID string, req dtos.UpdateMemberProfileReq) error {
	profile, err := s.profiles.GetProfile(ctx, targetIdPUserID)
	if err != nil {
		return err
	}

	current := profile.RoleValue()
	decision := auth.Authorize(actorRole, current, current)
	if !decision.Allowed {
		return &auth.ForbiddenError{Reason: decision.Reason}
	}

	if req.Grade != nil {
		profile.Grade = *req.Grade
	}
	if req.GetGradeAt != nil {
		profile.GetGradeAt = *req.GetGradeAt
	}
	if req.Year != nil {
		profile.Year = *req.Year
	}
	if req.JoinedAt != nil {
		profile.JoinedAt = *req.JoinedAt
	}

	return s.profiles.UpdateProfile(ctx, targetIdPUserID, profile)
}

// BuildProfileResponse decorates a profile with its display labels.
func BuildProfileResponse(user *gormModels.User, p *entities.Profile) dtos.ProfileResponse {
	role := p.RoleValue()
	return dtos.ProfileResponse{
		UserID:     user.ID,
		Username:   user.Username,
		Grade:      p.Grade,
		GradeLabel: constants.TranslateGrade(p.Grade),
		GetGradeAt: p.GetGradeAt,
		JoinedAt:   p.JoinedAt,
		Year:       p.Year,
		YearLabel:  constants.TranslateYear(p.Year),
		Role:       role.String(),
		RoleLabel:  role.Label(),
	}
}
