package services

import (
	"context"
	"time"

	"shobukan/keikoban/internal/constants"
	"shobukan/keikoban/internal/db/repositories"
	"shobukan/keikoban/internal/models/dtos"
	"shobukan/keikoban/internal/models/entities"
	"shobukan/keikoban/internal/norms"
)

// NormService combines a member's profile with their logged practice
// hours to report progress toward the next grade examination.
type NormService struct {
	activityRepo *repositories.ActivityRepository
}

func NewNormService(activityRepo *repositories.ActivityRepository) *NormService {
	return &NormService{activityRepo: activityRepo}
}

// GetProgress sums the member's practice hours since their last
// promotion (their whole history when never promoted) and applies the
// grade requirement table.
func (s *NormService) GetProgress(ctx context.Context, userID string, profile *entities.Profile) (*dtos.NormProgressResponse, error) {
	var since time.Time
	sinceLabel := ""
	if promoted, ok := profile.PromotionDate(); ok {
		since = promoted
		sinceLabel = profile.GetGradeAt
	}

	hours, err := s.activityRepo.SumPeriodSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	progress := norms.Calculate(profile.Grade, hours)

	return &dtos.NormProgressResponse{
		Grade:            progress.Grade,
		GradeLabel:       constants.TranslateGrade(progress.Grade),
		NextGradeAt:      sinceLabel,
		AccumulatedHours: progress.AccumulatedHours,
		RequiredDays:     progress.RequiredDays,
		CompletedDays:    progress.CompletedDays,
		RemainingDays:    progress.RemainingDays,
	}, nil
}
