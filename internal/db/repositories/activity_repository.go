package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	gormModels "shobukan/keikoban/internal/models/gorm"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new GORM-based activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// GetByID retrieves one activity.
func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*gormModels.Activity, error) {
	var activity gormModels.Activity

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&activity).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch activity: %w", err)
	}

	return &activity, nil
}

// ListForUser returns a user's activities inside [from, to), newest
// first, paginated. Zero bounds disable the respective filter.
func (r *ActivityRepository) ListForUser(ctx context.Context, userID string, from, to time.Time, page, pageSize int) ([]gormModels.Activity, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&gormModels.Activity{}).
		Where("user_id = ?", userID)

	if !from.IsZero() {
		query = query.Where("date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("date < ?", to)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	var activities []gormModels.Activity
	err := query.
		Order("date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&activities).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}

	return activities, total, nil
}

// SumPeriodSince sums a user's practice hours for activities dated on
// or after the given date.
func (r *ActivityRepository) SumPeriodSince(ctx context.Context, userID string, since time.Time) (float64, error) {
	var total float64

	err := r.db.WithContext(ctx).
		Model(&gormModels.Activity{}).
		Select("COALESCE(SUM(period), 0)").
		Where("user_id = ? AND date >= ?", userID, since).
		Scan(&total).Error

	if err != nil {
		return 0, fmt.Errorf("failed to sum activity periods: %w", err)
	}

	return total, nil
}

// Create inserts one activity row.
func (r *ActivityRepository) Create(ctx context.Context, activity *gormModels.Activity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// Update persists changed fields of an existing activity.
func (r *ActivityRepository) Update(ctx context.Context, activity *gormModels.Activity) error {
	if err := r.db.WithContext(ctx).Save(activity).Error; err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	return nil
}

// Delete removes one activity row.
func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&gormModels.Activity{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

// DeleteAllForUser removes every activity owned by the user. Driven by
// the identity provider's account-deletion webhook.
func (r *ActivityRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Delete(&gormModels.Activity{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete user activities: %w", err)
	}
	return nil
}
