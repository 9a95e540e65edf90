package middleware

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"shobukan/keikoban/internal/auth"
	"shobukan/keikoban/internal/constants"
	"shobukan/keikoban/internal/db/repositories"
	"shobukan/keikoban/internal/logging"
	"shobukan/keikoban/internal/services"
)

// AuthMiddleware resolves the identity provider's session cookie into
// UserClaims. The cookie is a JWT signed with the provider's signing
// secret; its subject is the provider-side user id. The local user row
// and the cached profile supply the rest of the claims.
func AuthMiddleware(signingSecret string, userRepo *repositories.UserRepository, profiles *services.ProfileService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			cookie, err := r.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Error(w, "Unauthorized. Missing session", http.StatusUnauthorized)
				return
			}

			idpUserID, err := verifySessionToken(cookie.Value, signingSecret)
			if err != nil {
				http.Error(w, "Unauthorized. Invalid session", http.StatusUnauthorized)
				return
			}

			user, err := userRepo.GetByIdPUserID(r.Context(), idpUserID)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					http.Error(w, "Unauthorized. Unknown member", http.StatusUnauthorized)
					return
				}
				logging.Error("Failed to resolve session user", "error", err.Error())
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			if !user.IsActive {
				http.Error(w, "Unauthorized. Account deactivated", http.StatusUnauthorized)
				return
			}

			role := constants.RoleMember
			profile, err := profiles.GetProfile(r.Context(), idpUserID)
			if err != nil {
				// A session without readable profile metadata still
				// identifies the member; they just carry no management
				// capability until the metadata is repaired.
				logging.Warn("Session without readable profile",
					"idp_user_id", idpUserID,
					"error", err.Error(),
				)
			} else {
				role = profile.RoleValue()
			}

			claims := &auth.SessionClaims{
				LocalUserID:  user.ID,
				IdPUserIDVal: user.IdPUserID,
				UsernameVal:  user.Username,
				RoleValue:    role,
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// verifySessionToken checks the signature and expiry of the session JWT
// and returns its subject.
func verifySessionToken(tokenStr, signingSecret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(signingSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid session token")
	}

	return claims.Subject, nil
}
