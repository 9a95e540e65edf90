package entities

// MonthlyTotal is one member's summed practice hours for a month, as
// returned by the ranking aggregation query. Rows arrive ordered by
// member join date so the ranking sort can break ties stably.
type MonthlyTotal struct {
	UserID   string  `db:"user_id"`
	Username string  `db:"username"`
	Total    float64 `db:"total"`
}
