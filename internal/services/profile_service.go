package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"

	"shobukan/keikoban/internal/common"
	"shobukan/keikoban/internal/constants"
	"shobukan/keikoban/internal/logging"
	"shobukan/keikoban/internal/models/entities"
	"shobukan/keikoban/internal/providers"
)

// IdentityAPI is the slice of the identity-provider client the profile
// service needs. Tests substitute a mock.
type IdentityAPI interface {
	GetUser(ctx context.Context, idpUserID string) (*providers.IdPUser, int, error)
	PatchUserMetadata(ctx context.Context, idpUserID string, metadata any) (int, error)
}

// ProfileService is the single gateway to profile metadata. Reads go
// through a TTL cache (cache-aside); writes patch the provider first
// and then overwrite the cache entry. Metadata is validated against the
// profile schema in both directions.
type ProfileService struct {
	idp      IdentityAPI
	cache    common.CacheInterface
	validate *validator.Validate
	group    singleflight.Group
}

func NewProfileService(idp IdentityAPI, cache common.CacheInterface) *ProfileService {
	return &ProfileService{
		idp:      idp,
		cache:    cache,
		validate: validator.New(),
	}
}

// GetProfile returns the validated profile for an identity-provider
// user id, from cache when fresh. Concurrent misses for the same user
// collapse into one provider call.
func (s *ProfileService) GetProfile(ctx context.Context, idpUserID string) (*entities.Profile, error) {
	cacheKey := string(constants.CachePrefixProfile) + idpUserID

	if val, found := s.cache.Get(cacheKey); found {
		if profile := coerceProfile(val); profile != nil {
			return profile, nil
		}
		// Unusable cached shape (e.g. a JSON map from the Redis
		// backend that no longer matches the schema): treat as a miss.
		s.cache.Delete(cacheKey)
	}

	val, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		profile, err := s.fetchProfile(ctx, idpUserID)
		if err != nil {
			return nil, err
		}
		s.cache.Set(cacheKey, profile, constants.ProfileCacheTTL)
		return profile, nil
	})
	if err != nil {
		return nil, err
	}

	return val.(*entities.Profile), nil
}

// UpdateProfile validates and writes the profile to the identity
// provider, then overwrites the cache entry.
func (s *ProfileService) UpdateProfile(ctx context.Context, idpUserID string, profile *entities.Profile) error {
	if err := s.validate.Struct(profile); err != nil {
		return &entities.ValidationError{Detail: "outgoing profile", Err: err}
	}

	if _, err := s.idp.PatchUserMetadata(ctx, idpUserID, profile); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	s.cache.Set(string(constants.CachePrefixProfile)+idpUserID, profile, constants.ProfileCacheTTL)
	return nil
}

// InvalidateProfile drops the cached profile, e.g. after the identity
// provider reports the account deleted.
func (s *ProfileService) InvalidateProfile(idpUserID string) {
	s.cache.Delete(string(constants.CachePrefixProfile) + idpUserID)
}

func (s *ProfileService) fetchProfile(ctx context.Context, idpUserID string) (*entities.Profile, error) {
	user, _, err := s.idp.GetUser(ctx, idpUserID)
	if err != nil {
		return nil, err
	}

	if len(user.Metadata) == 0 {
		return nil, &providers.ProviderError{
			Code:    constants.ErrCodeProfileMissing,
			Message: constants.GetIdPErrorMessage(constants.ErrCodeProfileMissing),
		}
	}

	profile, err := s.parseProfile(user.Metadata)
	if err != nil {
		logging.Warn("Stored profile metadata failed validation",
			"idp_user_id", idpUserID,
			"error", err.Error(),
		)
		return nil, err
	}

	return profile, nil
}

// parseProfile converts the raw metadata bag into the typed profile,
// enforcing the schema.
func (s *ProfileService) parseProfile(raw json.RawMessage) (*entities.Profile, error) {
	var profile entities.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, &entities.ValidationError{Detail: "metadata is not valid JSON", Err: err}
	}

	if err := s.validate.Struct(&profile); err != nil {
		return nil, &entities.ValidationError{Detail: "metadata schema", Err: err}
	}

	return &profile, nil
}

// coerceProfile recovers a typed profile from whatever the cache
// backend returned: the original pointer for the in-memory backend, a
// generic JSON map for the Redis one.
func coerceProfile(val interface{}) *entities.Profile {
	switch v := val.(type) {
	case *entities.Profile:
		return v
	case map[string]interface{}:
		data, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		var profile entities.Profile
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil
		}
		return &profile
	default:
		return nil
	}
}
