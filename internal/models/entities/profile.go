package entities

import (
	"fmt"
	"time"

	"shobukan/keikoban/internal/constants"
)

// Profile is the typed form of the free-form metadata bag the identity
// provider stores per user. It is parsed and validated at the boundary
// on every read and write; nothing else in the system touches the raw
// bag.
type Profile struct {
	Grade      int    `json:"grade" validate:"gte=-10,lte=10"`
	GetGradeAt string `json:"get_grade_at" validate:"omitempty,datetime=2006-01-02"`
	JoinedAt   int    `json:"joined_at" validate:"omitempty,gte=1950,lte=2100"`
	Year       string `json:"year" validate:"omitempty,oneof=b1 b2 b3 b4 m1 m2 ob"`
	Role       string `json:"role" validate:"required,oneof=member treasurer vice_captain captain admin"`
}

// RoleValue returns the typed role, RoleUnknown for anything invalid.
func (p *Profile) RoleValue() constants.ClubRole {
	return constants.ParseRole(p.Role)
}

// PromotionDate parses the last-promotion date. The boolean is false
// when the member has never been promoted.
func (p *Profile) PromotionDate() (time.Time, bool) {
	if p.GetGradeAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", p.GetGradeAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ValidationError marks metadata that failed schema validation when
// crossing the identity-provider boundary.
type ValidationError struct {
	Detail string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("profile validation failed: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("profile validation failed: %s", e.Detail)
}

func (e *ValidationError) Unwrap() error { return e.Err }
