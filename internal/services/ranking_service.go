package services

import (
	"context"
	"sort"
	"time"

	"shobukan/keikoban/internal/common"
	"shobukan/keikoban/internal/constants"
	"shobukan/keikoban/internal/models/dtos"
	"shobukan/keikoban/internal/models/entities"
)

// RankingSource yields per-member hour totals for a window, ordered by
// member join date.
type RankingSource interface {
	MonthlyTotals(ctx context.Context, from, to time.Time) ([]entities.MonthlyTotal, error)
}

// RankingService produces the monthly practice-hour ranking. Totals are
// sorted descending with a stable sort, so members with equal totals
// keep their join order.
type RankingService struct {
	source RankingSource
	cache  common.CacheInterface
}

func NewRankingService(source RankingSource, cache common.CacheInterface) *RankingService {
	return &RankingService{source: source, cache: cache}
}

// GetMonthlyRanking returns the full ranking for the month containing
// now, plus the requesting member's own rank and the cohort size. A
// member with no logged hours this month gets rank 0.
func (s *RankingService) GetMonthlyRanking(ctx context.Context, ownUserID string, now time.Time) (*dtos.MonthlyRankingResponse, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)
	monthKey := monthStart.Format("2006-01")

	entries, err := s.rankedEntries(ctx, monthKey, monthStart, nextMonth)
	if err != nil {
		return nil, err
	}

	ownRank := 0
	for _, entry := range entries {
		if entry.UserID == ownUserID {
			ownRank = entry.Rank
			break
		}
	}

	return &dtos.MonthlyRankingResponse{
		Month:      monthKey,
		Entries:    entries,
		OwnRank:    ownRank,
		CohortSize: len(entries),
	}, nil
}

func (s *RankingService) rankedEntries(ctx context.Context, monthKey string, from, to time.Time) ([]dtos.RankingEntry, error) {
	cacheKey := string(constants.CachePrefixMonthlyRanking) + monthKey

	if val, found := s.cache.Get(cacheKey); found {
		if entries, ok := val.([]dtos.RankingEntry); ok {
			return entries, nil
		}
		// Redis backend hands back generic JSON; cheaper to recompute
		// than to coerce a slice of maps.
		s.cache.Delete(cacheKey)
	}

	totals, err := s.source.MonthlyTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	// Input order is join order; the stable sort preserves it among
	// equal totals.
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})

	entries := make([]dtos.RankingEntry, 0, len(totals))
	for i, total := range totals {
		entries = append(entries, dtos.RankingEntry{
			Rank:     i + 1,
			UserID:   total.UserID,
			Username: total.Username,
			Total:    total.Total,
		})
	}

	s.cache.Set(cacheKey, entries, constants.RankingCacheTTL)
	return entries, nil
}
