package repositories

import (
	"context"
	"fmt"
	"time"

	"shobukan/keikoban/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// RankingRepository runs the aggregation queries behind the monthly
// ranking. It stays on sqlx because the query is a plain GROUP BY with
// no entity mapping to speak of.
type RankingRepository struct {
	db *sqlx.DB
}

func NewRankingRepository(db *sqlx.DB) *RankingRepository {
	return &RankingRepository{db: db}
}

const monthlyTotalsQuery = `
	SELECT
		u.id AS user_id,
		u.username,
		COALESCE(SUM(a.period), 0) AS total
	FROM activities a
	JOIN users u ON u.id = a.user_id
	WHERE u.is_active = TRUE
	  AND a.date >= $1
	  AND a.date < $2
	GROUP BY u.id, u.username, u.created_at
	ORDER BY u.created_at ASC`

// MonthlyTotals sums practice hours per member for [from, to). Rows are
// ordered by member join date; the service layer relies on that order
// for stable tie-breaking.
func (r *RankingRepository) MonthlyTotals(ctx context.Context, from, to time.Time) ([]entities.MonthlyTotal, error) {
	totals := []entities.MonthlyTotal{}

	if err := r.db.SelectContext(ctx, &totals, monthlyTotalsQuery, from, to); err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}

	return totals, nil
}
