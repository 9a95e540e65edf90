package constants

import "time"

type (
	RequestSource string
	APIStatus     string
	CachePrefix   string
)

const (
	RequestSourceAPI       RequestSource = "API"
	RequestSourceWebClient RequestSource = "WEB_CLIENT"

	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixProfile        CachePrefix = "PROFILE_"
	CachePrefixMonthlyRanking CachePrefix = "RANKING_MONTH_"
)

const (
	// ProfileCacheTTL bounds how stale a profile read from the identity
	// provider may be.
	ProfileCacheTTL = time.Hour

	// RankingCacheTTL bounds how stale the monthly ranking may be.
	RankingCacheTTL = 15 * time.Minute

	// SessionCookieName is the identity provider's session cookie.
	SessionCookieName = "__session"
)
