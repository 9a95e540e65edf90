package services

import (
	"context"
	"testing"

	"shobukan/keikoban/internal/db/repositories"
	"shobukan/keikoban/internal/models/dtos"
	"shobukan/keikoban/internal/models/entities"
)

func logTestActivities(t *testing.T, service *ActivityService, userID string, entries map[string]float64) {
	t.Helper()
	for date, period := range entries {
		if _, err := service.CreateActivity(context.Background(), userID, dtos.CreateActivityReq{
			Date:   date,
			Period: period,
		}); err != nil {
			t.Fatalf("failed to log activity on %s: %v", date, err)
		}
	}
}

func TestNormService_WholeHistoryWhenNeverPromoted(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "idp-1", "kenta")
	activityRepo := repositories.NewActivityRepository(db)
	activities := NewActivityService(activityRepo)
	service := NewNormService(activityRepo)

	logTestActivities(t, activities, user.ID, map[string]float64{
		"2025-04-01": 1.5,
		"2025-10-15": 3,
		"2026-02-20": 1.5,
	})

	profile := &entities.Profile{Grade: 0, Role: "member"}
	progress, err := service.GetProgress(context.Background(), user.ID, profile)
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}

	if progress.AccumulatedHours != 6 {
		t.Errorf("AccumulatedHours = %v, want 6", progress.AccumulatedHours)
	}
	if progress.CompletedDays != 4 {
		t.Errorf("CompletedDays = %d, want 4", progress.CompletedDays)
	}
	if progress.RequiredDays != 40 {
		t.Errorf("RequiredDays = %d, want 40", progress.RequiredDays)
	}
	if progress.RemainingDays != 36 {
		t.Errorf("RemainingDays = %d, want 36", progress.RemainingDays)
	}
	if progress.GradeLabel != "unranked" {
		t.Errorf("GradeLabel = %q, want unranked", progress.GradeLabel)
	}
}

func TestNormService_CountsFromPromotionDate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "idp-1", "kenta")
	activityRepo := repositories.NewActivityRepository(db)
	activities := NewActivityService(activityRepo)
	service := NewNormService(activityRepo)

	logTestActivities(t, activities, user.ID, map[string]float64{
		"2025-04-01": 10, // before promotion, must not count
		"2025-11-09": 1.5,
		"2026-01-10": 3,
	})

	profile := &entities.Profile{Grade: 2, GetGradeAt: "2025-11-09", Role: "member"}
	progress, err := service.GetProgress(context.Background(), user.ID, profile)
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}

	if progress.AccumulatedHours != 4.5 {
		t.Errorf("AccumulatedHours = %v, want 4.5 (promotion day inclusive)", progress.AccumulatedHours)
	}
	if progress.RequiredDays != 80 {
		t.Errorf("RequiredDays = %d, want 80", progress.RequiredDays)
	}
	if progress.CompletedDays != 3 {
		t.Errorf("CompletedDays = %d, want 3", progress.CompletedDays)
	}
	if progress.NextGradeAt != "2025-11-09" {
		t.Errorf("NextGradeAt = %q, want the promotion date", progress.NextGradeAt)
	}
}

func TestNormService_NoActivities(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "idp-1", "kenta")
	service := NewNormService(repositories.NewActivityRepository(db))

	profile := &entities.Profile{Grade: 1, Role: "member"}
	progress, err := service.GetProgress(context.Background(), user.ID, profile)
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}

	if progress.AccumulatedHours != 0 {
		t.Errorf("AccumulatedHours = %v, want 0", progress.AccumulatedHours)
	}
	if progress.RemainingDays != 100 {
		t.Errorf("RemainingDays = %d, want the full 100", progress.RemainingDays)
	}
}
