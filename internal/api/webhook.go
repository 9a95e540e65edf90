package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"shobukan/keikoban/internal/common"
	"shobukan/keikoban/internal/db/repositories"
	"shobukan/keikoban/internal/logging"
	"shobukan/keikoban/internal/models/dtos"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw webhook body.
const SignatureHeader = "X-Idp-Signature"

// IdentityWebhookHandler handles POST /webhooks/identity.
//
// The identity provider posts account-level events here. Only
// user.deleted is acted on: the member's activities are removed and
// the local row deactivated, keeping the relational store consistent
// with the provider-side account deletion.
func IdentityWebhookHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to read body", http.StatusBadRequest)
			return
		}

		if !verifyWebhookSignature(body, r.Header.Get(SignatureHeader), deps.Cfg.IdPWebhookSecret) {
			common.RespondError(w, initTime, nil, "Invalid webhook signature", http.StatusUnauthorized)
			return
		}

		var event dtos.IdentityWebhookEvent
		if err := json.Unmarshal(body, &event); err != nil {
			common.RespondError(w, initTime, err, "Invalid webhook payload", http.StatusBadRequest)
			return
		}

		switch event.Type {
		case "user.deleted":
			if err := handleUserDeleted(deps, r, event.Data.UserID); err != nil {
				common.RespondError(w, initTime, err, "Failed to process deletion", http.StatusInternalServerError)
				return
			}
		default:
			// Unhandled event types are acknowledged so the provider
			// stops retrying them.
			logging.Debug("Ignoring identity webhook event", "type", event.Type)
		}

		common.RespondSuccess(w, initTime, "Webhook processed", nil)
	}
}

func handleUserDeleted(deps *Dependencies, r *http.Request, idpUserID string) error {
	user, err := deps.Repo.User.GetByIdPUserID(r.Context(), idpUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Already gone locally; nothing to clean up.
			return nil
		}
		return err
	}

	if err := deps.Repo.Activity.DeleteAllForUser(r.Context(), user.ID); err != nil {
		return err
	}
	if err := deps.Repo.User.Deactivate(r.Context(), user.ID); err != nil {
		return err
	}

	deps.Services.Profile.InvalidateProfile(idpUserID)

	logging.Info("Processed account deletion",
		"user_id", user.ID,
		"idp_user_id", idpUserID,
	)
	return nil
}

// verifyWebhookSignature checks the provider's HMAC-SHA256 signature
// over the raw body.
func verifyWebhookSignature(body []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func (h *Handlers) IdentityWebhook() http.HandlerFunc {
	return IdentityWebhookHandler(h.deps)
}
