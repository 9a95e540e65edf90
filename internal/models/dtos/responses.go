package dtos

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

type ProfileResponse struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Grade      int    `json:"grade"`
	GradeLabel string `json:"grade_label"`
	GetGradeAt string `json:"get_grade_at,omitempty"`
	JoinedAt   int    `json:"joined_at,omitempty"`
	Year       string `json:"year,omitempty"`
	YearLabel  string `json:"year_label"`
	Role       string `json:"role"`
	RoleLabel  string `json:"role_label"`
}

type ActivityResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Date      string  `json:"date"`
	Period    float64 `json:"period"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	Total      int64              `json:"total"`
}

type NormProgressResponse struct {
	Grade            int     `json:"grade"`
	GradeLabel       string  `json:"grade_label"`
	NextGradeAt      string  `json:"counting_since,omitempty"`
	AccumulatedHours float64 `json:"accumulated_hours"`
	RequiredDays     int     `json:"required_days"`
	CompletedDays    int     `json:"completed_days"`
	RemainingDays    int     `json:"remaining_days"`
}

type RankingEntry struct {
	Rank     int     `json:"rank"`
	UserID   string  `json:"user_id"`
	Username string  `json:"username"`
	Total    float64 `json:"total"`
}

type MonthlyRankingResponse struct {
	Month      string         `json:"month"`
	Entries    []RankingEntry `json:"entries"`
	OwnRank    int            `json:"own_rank"`
	CohortSize int            `json:"cohort_size"`
}

type MemberSummary struct {
	UserID    string           `json:"user_id"`
	IdPUserID string           `json:"idp_user_id"`
	Username  string           `json:"username"`
	IsActive  bool             `json:"is_active"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
}
