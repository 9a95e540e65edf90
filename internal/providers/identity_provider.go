package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shobukan/keikoban/internal/constants"
)

// IdentityProvider is the HTTP client for the hosted identity service
// that owns authentication, sessions, and per-user profile metadata.
// The portal only ever reads and patches the metadata bag; it never
// issues sessions itself.
type IdentityProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// IdPUser is the provider's user record as the portal consumes it.
type IdPUser struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Metadata json.RawMessage `json:"metadata"`
}

// NewIdentityProvider creates a client against the configured identity
// provider endpoint.
func NewIdentityProvider(baseURL, apiKey string) *IdentityProvider {
	return &IdentityProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetUser fetches one user record, metadata bag included.
func (p *IdentityProvider) GetUser(ctx context.Context, idpUserID string) (*IdPUser, int, error) {
	if idpUserID == "" {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeIdPUserNotFound,
			Message: "User ID cannot be empty",
		}
	}

	var user IdPUser
	status, err := p.doGET(ctx, "/users/"+idpUserID, &user)
	if err != nil {
		return nil, status, err
	}

	return &user, status, nil
}

// PatchUserMetadata replaces the given keys in the user's metadata bag.
// Keys absent from the payload are left untouched by the provider.
func (p *IdentityProvider) PatchUserMetadata(ctx context.Context, idpUserID string, metadata any) (int, error) {
	if idpUserID == "" {
		return 0, &ProviderError{
			Code:    constants.ErrCodeIdPUserNotFound,
			Message: "User ID cannot be empty",
		}
	}

	payload := map[string]any{"metadata": metadata}
	return p.doPATCH(ctx, "/users/"+idpUserID+"/metadata", payload, nil)
}

// ============================================================================
// HTTP Helper Methods
// ============================================================================

// doGET performs a GET request with authentication
func (p *IdentityProvider) doGET(ctx context.Context, endpoint string, result interface{}) (int, error) {
	if p.APIKey == "" {
		return 0, &ProviderError{
			Code:    constants.ErrCodeIdPInvalidAPIKey,
			Message: "IDP_API_KEY environment variable is not set",
		}
	}

	url := p.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeIdPNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}

	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeIdPNetworkError,
			Message: constants.GetIdPErrorMessage(constants.ErrCodeIdPNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if err := p.handleHTTPError(resp, endpoint); err != nil {
		return resp.StatusCode, err
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeIdPMalformedReply,
			Message: "Failed to decode response",
			Details: string(bodyBytes),
			Err:     err,
		}
	}

	return resp.StatusCode, nil
}

// doPATCH performs a PATCH request with authentication and JSON body
func (p *IdentityProvider) doPATCH(ctx context.Context, endpoint string, payload interface{}, result interface{}) (int, error) {
	if p.APIKey == "" {
		return 0, &ProviderError{
			Code:    constants.ErrCodeIdPInvalidAPIKey,
			Message: "IDP_API_KEY environment variable is not set",
		}
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeIdPWriteRejected,
			Message: "Failed to marshal request body",
			Err:     err,
		}
	}

	url := p.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, "PATCH", url, bytes.NewReader(payloadBytes))
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeIdPNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}

	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeIdPNetworkError,
			Message: constants.GetIdPErrorMessage(constants.ErrCodeIdPNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if err := p.handleHTTPError(resp, endpoint); err != nil {
		return resp.StatusCode, err
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return resp.StatusCode, &ProviderError{
				Code:    constants.ErrCodeIdPMalformedReply,
				Message: "Failed to decode response",
				Err:     err,
			}
		}
	}

	return resp.StatusCode, nil
}

// handleHTTPError maps non-2xx provider responses to typed errors.
func (p *IdentityProvider) handleHTTPError(resp *http.Response, endpoint string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	bodyBytes, _ := io.ReadAll(resp.Body)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &ProviderError{
			Code:    constants.ErrCodeIdPInvalidAPIKey,
			Message: constants.GetIdPErrorMessage(constants.ErrCodeIdPInvalidAPIKey),
			Details: string(bodyBytes),
		}
	case http.StatusNotFound:
		return &ProviderError{
			Code:    constants.ErrCodeIdPUserNotFound,
			Message: constants.GetIdPErrorMessage(constants.ErrCodeIdPUserNotFound),
			Details: endpoint,
		}
	case http.StatusTooManyRequests:
		return &ProviderError{
			Code:    constants.ErrCodeIdPRateLimited,
			Message: constants.GetIdPErrorMessage(constants.ErrCodeIdPRateLimited),
		}
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		return &ProviderError{
			Code:    constants.ErrCodeIdPWriteRejected,
			Message: constants.GetIdPErrorMessage(constants.ErrCodeIdPWriteRejected),
			Details: string(bodyBytes),
		}
	default:
		return &ProviderError{
			Code:    constants.ErrCodeIdPNetworkError,
			Message: fmt.Sprintf("Identity provider returned status %d", resp.StatusCode),
			Details: string(bodyBytes),
		}
	}
}

// ProviderError carries a typed failure from the identity provider.
type ProviderError struct {
	Code    string
	Message string
	Details string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
