package api

import (
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"shobukan/keikoban/internal/common"
	"shobukan/keikoban/internal/config"
	"shobukan/keikoban/internal/db/repositories"
	"shobukan/keikoban/internal/metrics"
	"shobukan/keikoban/internal/providers"
	"shobukan/keikoban/internal/services"
)

type Repositories struct {
	User     *repositories.UserRepository
	Activity *repositories.ActivityRepository
	Ranking  *repositories.RankingRepository
}

type Services struct {
	Cache      common.CacheInterface
	Profile    *services.ProfileService
	Activity   *services.ActivityService
	Norm       *services.NormService
	Ranking    *services.RankingService
	MemberMgmt *services.MemberManagementService
}

type Dependencies struct {
	Cfg      *config.Config
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	IdP      *providers.IdentityProvider
}

// InitDependencies wires repositories and services. The cache backend
// is chosen by config: Redis for multi-instance deployments, in-memory
// otherwise.
func InitDependencies(cfg *config.Config, sqlxDB *sqlx.DB, gormDB *gorm.DB, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		User:     repositories.NewUserRepository(gormDB),
		Activity: repositories.NewActivityRepository(gormDB),
		Ranking:  repositories.NewRankingRepository(sqlxDB),
	}

	var cacheSvc common.CacheInterface
	if cfg.CacheBackend == "redis" {
		cacheSvc = common.NewRedisCacheService(common.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword))
	} else {
		cacheSvc = common.NewCacheService(3600, 600)
	}

	idp := providers.NewIdentityProvider(cfg.IdPBaseURL, cfg.IdPAPIKey)

	profileSvc := services.NewProfileService(idp, cacheSvc)

	svcs := &Services{
		Cache:      cacheSvc,
		Profile:    profileSvc,
		Activity:   services.NewActivityService(repos.Activity),
		Norm:       services.NewNormService(repos.Activity),
		Ranking:    services.NewRankingService(repos.Ranking, cacheSvc),
		MemberMgmt: services.NewMemberManagementService(repos.User, profileSvc),
	}

	return &Dependencies{
		Cfg:      cfg,
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
		IdP:      idp,
	}, nil
}
