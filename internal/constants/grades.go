package constants

// Grade codes are signed integers: positive values are kyu ranks
// counting down toward promotion, negative values are dan ranks, and 0
// means ungraded.

const (
	// HoursPerPracticeDay converts logged practice hours into counted
	// practice days for norm calculation.
	HoursPerPracticeDay = 1.5

	// DefaultRequiredDays is the ceiling applied to any grade missing
	// from the requirement table.
	DefaultRequiredDays = 300

	// UnknownLabel is returned by every translation for input outside
	// its table.
	UnknownLabel = "unknown"
)

// gradeRequiredDays maps a grade to the practice days required before
// the next examination.
var gradeRequiredDays = map[int]int{
	0:  40,
	5:  60,
	4:  60,
	3:  80,
	2:  80,
	1:  100,
	-1: 200,
}

var gradeLabels = map[int]string{
	0:  "unranked",
	6:  "6th kyu",
	5:  "5th kyu",
	4:  "4th kyu",
	3:  "3rd kyu",
	2:  "2nd kyu",
	1:  "1st kyu",
	-1: "shodan",
	-2: "nidan",
	-3: "sandan",
	-4: "yondan",
	-5: "godan",
}

var yearLabels = map[string]string{
	"b1": "1st year",
	"b2": "2nd year",
	"b3": "3rd year",
	"b4": "4th year",
	"m1": "Masters 1st year",
	"m2": "Masters 2nd year",
	"ob": "Alumni",
}

// RequiredDaysForGrade returns the practice days a member at the given
// grade must accumulate before the next examination. Grades outside the
// table fall back to DefaultRequiredDays.
func RequiredDaysForGrade(grade int) int {
	if days, ok := gradeRequiredDays[grade]; ok {
		return days
	}
	return DefaultRequiredDays
}

// TranslateGrade maps a grade code to its display label.
func TranslateGrade(grade int) string {
	if label, ok := gradeLabels[grade]; ok {
		return label
	}
	return UnknownLabel
}

// GradeFromLabel is the inverse lookup of TranslateGrade. The boolean
// is false when the label is not in the table.
func GradeFromLabel(label string) (int, bool) {
	for grade, l := range gradeLabels {
		if l == label {
			return grade, true
		}
	}
	return 0, false
}

// TranslateYear maps an academic-year code (b1..b4, m1, m2, ob) to its
// display label.
func TranslateYear(code string) string {
	if label, ok := yearLabels[code]; ok {
		return label
	}
	return UnknownLabel
}

// IsValidYear reports whether the academic-year code is in the table.
func IsValidYear(code string) bool {
	_, ok := yearLabels[code]
	return ok
}
