package api

import (
	"net/http"
	"time"

	"shobukan/keikoban/internal/auth"
	"shobukan/keikoban/internal/common"
)

// GetMonthlyRankingHandler handles GET /api/v1/rankings/monthly
func GetMonthlyRankingHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		ranking, err := deps.Services.Ranking.GetMonthlyRanking(r.Context(), claims.UserID(), time.Now().UTC())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to compute ranking", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Ranking computed", ranking)
	}
}

func (h *Handlers) GetMonthlyRanking() http.HandlerFunc {
	return GetMonthlyRankingHandler(h.deps)
}
