package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shobukan/keikoban/internal/constants"
)

func TestIdentityProvider_GetUser_Success(t *testing.T) {
	// Mock server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if r.URL.Path != "/users/idp-123" {
			t.Errorf("Expected path /users/idp-123, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization header = %q", got)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(IdPUser{
			ID:       "idp-123",
			Username: "kenta",
			Metadata: json.RawMessage(`{"grade":2,"role":"member"}`),
		})
	}))
	defer server.Close()

	provider := &IdentityProvider{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Client:  &http.Client{},
	}

	user, status, err := provider.GetUser(context.Background(), "idp-123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("Expected status 200, got %d", status)
	}
	if user.Username != "kenta" {
		t.Errorf("Username = %q, want kenta", user.Username)
	}
	if len(user.Metadata) == 0 {
		t.Error("Expected metadata to be carried through")
	}
}

func TestIdentityProvider_GetUser_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	provider := &IdentityProvider{BaseURL: server.URL, APIKey: "test-key", Client: &http.Client{}}

	_, status, err := provider.GetUser(context.Background(), "idp-missing")
	if err == nil {
		t.Fatal("Expected error for 404")
	}
	if status != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", status)
	}

	var pErr *ProviderError
	if !errors.As(err, &pErr) {
		t.Fatalf("error type = %T, want *ProviderError", err)
	}
	if pErr.Code != constants.ErrCodeIdPUserNotFound {
		t.Errorf("Code = %s, want %s", pErr.Code, constants.ErrCodeIdPUserNotFound)
	}
}

func TestIdentityProvider_GetUser_InvalidAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := &IdentityProvider{BaseURL: server.URL, APIKey: "wrong-key", Client: &http.Client{}}

	_, _, err := provider.GetUser(context.Background(), "idp-123")
	var pErr *ProviderError
	if !errors.As(err, &pErr) {
		t.Fatalf("error type = %T, want *ProviderError", err)
	}
	if pErr.Code != constants.ErrCodeIdPInvalidAPIKey {
		t.Errorf("Code = %s, want %s", pErr.Code, constants.ErrCodeIdPInvalidAPIKey)
	}
}

func TestIdentityProvider_GetUser_EmptyID(t *testing.T) {
	provider := &IdentityProvider{BaseURL: "http://unused", APIKey: "test-key", Client: &http.Client{}}

	if _, _, err := provider.GetUser(context.Background(), ""); err == nil {
		t.Error("Expected error for empty user id")
	}
}

func TestIdentityProvider_GetUser_MissingAPIKey(t *testing.T) {
	provider := &IdentityProvider{BaseURL: "http://unused", Client: &http.Client{}}

	_, _, err := provider.GetUser(context.Background(), "idp-123")
	var pErr *ProviderError
	if !errors.As(err, &pErr) {
		t.Fatalf("error type = %T, want *ProviderError", err)
	}
	if pErr.Code != constants.ErrCodeIdPInvalidAPIKey {
		t.Errorf("Code = %s, want %s", pErr.Code, constants.ErrCodeIdPInvalidAPIKey)
	}
}

func TestIdentityProvider_PatchUserMetadata_WrapsPayload(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PATCH" {
			t.Errorf("Expected PATCH request, got %s", r.Method)
		}
		if r.URL.Path != "/users/idp-123/metadata" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("Failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	provider := &IdentityProvider{BaseURL: server.URL, APIKey: "test-key", Client: &http.Client{}}

	status, err := provider.PatchUserMetadata(context.Background(), "idp-123", map[string]any{"role": "treasurer"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("Expected status 200, got %d", status)
	}

	metadata, ok := received["metadata"].(map[string]any)
	if !ok {
		t.Fatalf("body %v does not wrap the payload under metadata", received)
	}
	if metadata["role"] != "treasurer" {
		t.Errorf("metadata.role = %v, want treasurer", metadata["role"])
	}
}

func TestIdentityProvider_PatchUserMetadata_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	provider := &IdentityProvider{BaseURL: server.URL, APIKey: "test-key", Client: &http.Client{}}

	_, err := provider.PatchUserMetadata(context.Background(), "idp-123", map[string]any{"grade": "ten"})
	var pErr *ProviderError
	if !errors.As(err, &pErr) {
		t.Fatalf("error type = %T, want *ProviderError", err)
	}
	if pErr.Code != constants.ErrCodeIdPWriteRejected {
		t.Errorf("Code = %s, want %s", pErr.Code, constants.ErrCodeIdPWriteRejected)
	}
}
