package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"shobukan/keikoban/internal/constants"
	"shobukan/keikoban/internal/db/repositories"
	"shobukan/keikoban/internal/models/dtos"
	gormModels "shobukan/keikoban/internal/models/gorm"
)

const activityDateLayout = "2006-01-02"

// ErrNotOwner is returned when someone who is neither the owner nor
// management tries to touch an activity.
var ErrNotOwner = errors.New("forbidden: not the owner of this activity")

// ErrInvalidPeriod guards the period > 0 invariant for callers that
// bypass DTO validation.
var ErrInvalidPeriod = errors.New("activity period must be greater than zero")

type ActivityService struct {
	activityRepo *repositories.ActivityRepository
	validate     *validator.Validate
}

func NewActivityService(activityRepo *repositories.ActivityRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		validate:     validator.New(),
	}
}

// ListActivities returns one page of a user's activities, optionally
// bounded to a date range. Bounds come in as yyyy-mm-dd strings.
func (s *ActivityService) ListActivities(ctx context.Context, userID, fromStr, toStr string, page, pageSize int) (*dtos.ActivityListResponse, error) {
	var from, to time.Time
	var err error

	if fromStr != "" {
		if from, err = time.Parse(activityDateLayout, fromStr); err != nil {
			return nil, fmt.Errorf("invalid from date: %w", err)
		}
	}
	if toStr != "" {
		if to, err = time.Parse(activityDateLayout, toStr); err != nil {
			return nil, fmt.Errorf("invalid to date: %w", err)
		}
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	activities, total, err := s.activityRepo.ListForUser(ctx, userID, from, to, page, pageSize)
	if err != nil {
		return nil, err
	}

	resp := &dtos.ActivityListResponse{
		Activities: make([]dtos.ActivityResponse, 0, len(activities)),
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
	}
	for i := range activities {
		resp.Activities = append(resp.Activities, toActivityResponse(&activities[i]))
	}

	return resp, nil
}

// CreateActivity logs one practice session for the user.
func (s *ActivityService) CreateActivity(ctx context.Context, userID string, req dtos.CreateActivityReq) (*dtos.ActivityResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid activity: %w", err)
	}
	if req.Period <= 0 {
		return nil, ErrInvalidPeriod
	}

	date, err := time.Parse(activityDateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	activity := &gormModels.Activity{
		UserID: userID,
		Date:   date,
		Period: req.Period,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	resp := toActivityResponse(activity)
	return &resp, nil
}

// UpdateActivity mutates an existing session. Only the owner or a
// management member may do so.
func (s *ActivityService) UpdateActivity(ctx context.Context, actorUserID string, actorRole constants.ClubRole, activityID string, req dtos.UpdateActivityReq) (*dtos.ActivityResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid activity update: %w", err)
	}

	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	if activity.UserID != actorUserID && !actorRole.IsManagement() {
		return nil, ErrNotOwner
	}

	if req.Date != nil {
		date, err := time.Parse(activityDateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		activity.Date = date
	}
	if req.Period != nil {
		if *req.Period <= 0 {
			return nil, ErrInvalidPeriod
		}
		activity.Period = *req.Period
	}

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, err
	}

	resp := toActivityResponse(activity)
	return &resp, nil
}

// DeleteActivity removes a session under the same ownership rule as
// UpdateActivity.
func (s *ActivityService) DeleteActivity(ctx context.Context, actorUserID string, actorRole constants.ClubRole, activityID string) error {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return err
	}

	if activity.UserID != actorUserID && !actorRole.IsManagement() {
		return ErrNotOwner
	}

	return s.activityRepo.Delete(ctx, activityID)
}

func toActivityResponse(a *gormModels.Activity) dtos.ActivityResponse {
	return dtos.ActivityResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Date:      a.Date.Format(activityDateLayout),
		Period:    a.Period,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
