package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"shobukan/keikoban/internal/common"
	"shobukan/keikoban/internal/models/entities"
)

type mockRankingSource struct {
	totals []entities.MonthlyTotal
	err    error
	calls  int
}

func (m *mockRankingSource) MonthlyTotals(ctx context.Context, from, to time.Time) ([]entities.MonthlyTotal, error) {
	m.calls++
	return m.totals, m.err
}

func TestGetMonthlyRanking_StableTieBreak(t *testing.T) {
	// Join order: alice, bob, carol. Bob and carol are tied; bob joined
	// first so he keeps the higher rank.
	source := &mockRankingSource{
		totals: []entities.MonthlyTotal{
			{UserID: "u-alice", Username: "alice", Total: 3},
			{UserID: "u-bob", Username: "bob", Total: 5},
			{UserID: "u-carol", Username: "carol", Total: 5},
		},
	}
	service := NewRankingService(source, common.NewCacheService(60, 120))

	resp, err := service.GetMonthlyRanking(context.Background(), "u-alice", time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetMonthlyRanking failed: %v", err)
	}

	if resp.Month != "2026-03" {
		t.Errorf("Month = %q, want 2026-03", resp.Month)
	}
	if resp.CohortSize != 3 {
		t.Errorf("CohortSize = %d, want 3", resp.CohortSize)
	}
	if resp.OwnRank != 3 {
		t.Errorf("OwnRank = %d, want 3", resp.OwnRank)
	}

	wantOrder := []string{"bob", "carol", "alice"}
	for i, want := range wantOrder {
		got := resp.Entries[i]
		if got.Username != want {
			t.Errorf("entry %d = %s, want %s", i, got.Username, want)
		}
		if got.Rank != i+1 {
			t.Errorf("entry %d rank = %d, want %d", i, got.Rank, i+1)
		}
	}
}

func TestGetMonthlyRanking_NoOwnEntry(t *testing.T) {
	source := &mockRankingSource{
		totals: []entities.MonthlyTotal{
			{UserID: "u-bob", Username: "bob", Total: 5},
		},
	}
	service := NewRankingService(source, common.NewCacheService(60, 120))

	resp, err := service.GetMonthlyRanking(context.Background(), "u-lurker", time.Now())
	if err != nil {
		t.Fatalf("GetMonthlyRanking failed: %v", err)
	}
	if resp.OwnRank != 0 {
		t.Errorf("OwnRank = %d, want 0 for a member without logged hours", resp.OwnRank)
	}
}

func TestGetMonthlyRanking_CachesPerMonth(t *testing.T) {
	source := &mockRankingSource{
		totals: []entities.MonthlyTotal{
			{UserID: "u-bob", Username: "bob", Total: 5},
		},
	}
	service := NewRankingService(source, common.NewCacheService(60, 120))
	now := time.Date(2026, 7, 2, 8, 0, 0, 0, time.UTC)

	if _, err := service.GetMonthlyRanking(context.Background(), "u-bob", now); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if _, err := service.GetMonthlyRanking(context.Background(), "u-bob", now); err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	if source.calls != 1 {
		t.Errorf("source queried %d times, want 1 (second call should hit the cache)", source.calls)
	}
}

func TestGetMonthlyRanking_SourceError(t *testing.T) {
	source := &mockRankingSource{err: errors.New("db down")}
	service := NewRankingService(source, common.NewCacheService(60, 120))

	if _, err := service.GetMonthlyRanking(context.Background(), "u-bob", time.Now()); err == nil {
		t.Fatal("expected error from failing source")
	}
}
