package norms

import (
	"testing"

	"shobukan/keikoban/internal/constants"
)

func TestCompletedDays(t *testing.T) {
	cases := []struct {
		hours float64
		want  int
	}{
		{0, 0},
		{-3, 0},
		{1.4, 0},
		{1.5, 1},
		{3, 2},
		{59.9, 39},
		{60, 40},
		{61, 40},
	}

	for _, c := range cases {
		if got := CompletedDays(c.hours); got != c.want {
			t.Errorf("CompletedDays(%v) = %d, want %d", c.hours, got, c.want)
		}
	}
}

func TestRemainingDaysPerGrade(t *testing.T) {
	cases := []struct {
		grade    int
		required int
	}{
		{0, 40},
		{5, 60},
		{4, 60},
		{3, 80},
		{2, 80},
		{1, 100},
		{-1, 200},
		{7, constants.DefaultRequiredDays},
		{-3, constants.DefaultRequiredDays},
	}

	for _, c := range cases {
		if got := RemainingDays(c.grade, 0); got != c.required {
			t.Errorf("RemainingDays(grade=%d, 0h) = %d, want %d", c.grade, got, c.required)
		}
	}
}

func TestRemainingDaysNeverNegative(t *testing.T) {
	if got := RemainingDays(0, 10000); got != 0 {
		t.Errorf("RemainingDays with excess hours = %d, want 0", got)
	}
}

func TestRemainingDaysMonotonic(t *testing.T) {
	prev := RemainingDays(3, 0)
	for hours := 0.5; hours <= 130; hours += 0.5 {
		got := RemainingDays(3, hours)
		if got > prev {
			t.Fatalf("RemainingDays increased from %d to %d at %v hours", prev, got, hours)
		}
		prev = got
	}
}

func TestCalculate(t *testing.T) {
	p := Calculate(2, 45)

	if p.Grade != 2 {
		t.Errorf("Grade = %d, want 2", p.Grade)
	}
	if p.AccumulatedHours != 45 {
		t.Errorf("AccumulatedHours = %v, want 45", p.AccumulatedHours)
	}
	if p.RequiredDays != 80 {
		t.Errorf("RequiredDays = %d, want 80", p.RequiredDays)
	}
	if p.CompletedDays != 30 {
		t.Errorf("CompletedDays = %d, want 30", p.CompletedDays)
	}
	if p.RemainingDays != 50 {
		t.Errorf("RemainingDays = %d, want 50", p.RemainingDays)
	}
}

func TestCalculateClampsNegativeHours(t *testing.T) {
	p := Calculate(0, -12)

	if p.AccumulatedHours != 0 {
		t.Errorf("AccumulatedHours = %v, want 0", p.AccumulatedHours)
	}
	if p.CompletedDays != 0 {
		t.Errorf("CompletedDays = %d, want 0", p.CompletedDays)
	}
	if p.RemainingDays != 40 {
		t.Errorf("RemainingDays = %d, want 40", p.RemainingDays)
	}
}
