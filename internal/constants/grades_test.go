package constants

import "testing"

func TestRequiredDaysForGrade(t *testing.T) {
	cases := []struct {
		grade int
		want  int
	}{
		{0, 40},
		{5, 60},
		{4, 60},
		{3, 80},
		{2, 80},
		{1, 100},
		{-1, 200},
		{6, DefaultRequiredDays},
		{-2, DefaultRequiredDays},
		{42, DefaultRequiredDays},
	}

	for _, c := range cases {
		if got := RequiredDaysForGrade(c.grade); got != c.want {
			t.Errorf("RequiredDaysForGrade(%d) = %d, want %d", c.grade, got, c.want)
		}
	}
}

func TestTranslateGradeRoundTrip(t *testing.T) {
	for grade := -5; grade <= 6; grade++ {
		label := TranslateGrade(grade)
		if label == UnknownLabel {
			t.Errorf("TranslateGrade(%d) returned the unknown sentinel", grade)
			continue
		}
		back, ok := GradeFromLabel(label)
		if !ok || back != grade {
			t.Errorf("GradeFromLabel(%q) = (%d, %v), want (%d, true)", label, back, ok, grade)
		}
	}
}

func TestTranslateGradeUnknown(t *testing.T) {
	if got := TranslateGrade(99); got != UnknownLabel {
		t.Errorf("TranslateGrade(99) = %q, want %q", got, UnknownLabel)
	}
	if _, ok := GradeFromLabel("grandmaster"); ok {
		t.Error("GradeFromLabel should reject labels outside the table")
	}
}

func TestTranslateYear(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"b1", "1st year"},
		{"b4", "4th year"},
		{"m2", "Masters 2nd year"},
		{"ob", "Alumni"},
		{"phd", UnknownLabel},
		{"", UnknownLabel},
	}

	for _, c := range cases {
		if got := TranslateYear(c.code); got != c.want {
			t.Errorf("TranslateYear(%q) = %q, want %q", c.code, got, c.want)
		}
	}
}

func TestIsValidYear(t *testing.T) {
	for _, code := range []string{"b1", "b2", "b3", "b4", "m1", "m2", "ob"} {
		if !IsValidYear(code) {
			t.Errorf("IsValidYear(%q) = false", code)
		}
	}
	if IsValidYear("b5") {
		t.Error("IsValidYear(b5) should be false")
	}
}
