package dtos

type CreateActivityReq struct {
	Date   string  `json:"date" validate:"required,datetime=2006-01-02"`
	Period float64 `json:"period" validate:"required,gt=0"`
}

type UpdateActivityReq struct {
	Date   *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Period *float64 `json:"period" validate:"omitempty,gt=0"`
}

// UpdateOwnProfileReq covers the fields a member may change on their
// own profile. Grade and promotion date are management-only.
type UpdateOwnProfileReq struct {
	Year     *string `json:"year" validate:"omitempty,oneof=b1 b2 b3 b4 m1 m2 ob"`
	JoinedAt *int    `json:"joined_at" validate:"omitempty,gte=1950,lte=2100"`
}

// UpdateMemberProfileReq covers the fields management may change on
// another member's profile. Role changes go through SetRoleReq.
type UpdateMemberProfileReq struct {
	Grade      *int    `json:"grade" validate:"omitempty,gte=-10,lte=10"`
	GetGradeAt *string `json:"get_grade_at" validate:"omitempty,datetime=2006-01-02"`
	Year       *string `json:"year" validate:"omitempty,oneof=b1 b2 b3 b4 m1 m2 ob"`
	JoinedAt   *int    `json:"joined_at" validate:"omitempty,gte=1950,lte=2100"`
}

type SetRoleReq struct {
	Role string `json:"role" validate:"required,oneof=member treasurer vice_captain captain admin"`
}

// IdentityWebhookEvent is the payload the identity provider posts when
// an account-level event fires.
type IdentityWebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		UserID string `json:"user_id"`
	} `json:"data"`
}
