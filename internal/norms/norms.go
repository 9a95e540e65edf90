// Package norms computes progress toward the next grade examination
// from accumulated practice hours.
package norms

import (
	"math"

	"shobukan/keikoban/internal/constants"
)

// Progress summarises a member's standing against the requirement for
// their current grade.
type Progress struct {
	Grade            int     `json:"grade"`
	AccumulatedHours float64 `json:"accumulated_hours"`
	RequiredDays     int     `json:"required_days"`
	CompletedDays    int     `json:"completed_days"`
	RemainingDays    int     `json:"remaining_days"`
}

// CompletedDays converts accumulated practice hours into counted
// practice days, floored. Negative input counts as zero.
func CompletedDays(hours float64) int {
	if hours <= 0 {
		return 0
	}
	return int(math.Floor(hours / constants.HoursPerPracticeDay))
}

// RemainingDays returns how many more practice days the member needs
// before the next examination. Never negative; more hours never
// increases the result.
func RemainingDays(grade int, hours float64) int {
	required := constants.RequiredDaysForGrade(grade)
	remaining := required - CompletedDays(hours)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Calculate builds the full progress summary for a grade and hour sum.
func Calculate(grade int, hours float64) Progress {
	if hours < 0 {
		hours = 0
	}
	return Progress{
		Grade:            grade,
		AccumulatedHours: hours,
		RequiredDays:     constants.RequiredDaysForGrade(grade),
		CompletedDays:    CompletedDays(hours),
		RemainingDays:    RemainingDays(grade, hours),
	}
}
