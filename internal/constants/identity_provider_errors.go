package constants

// Identity Provider Error Codes
// These constants define specific error scenarios for the hosted
// identity provider the portal delegates auth and profile storage to.

const (
	ErrCodeIdPInvalidAPIKey  = "IDP_INVALID_API_KEY"
	ErrCodeIdPRateLimited    = "IDP_RATE_LIMITED"
	ErrCodeIdPNetworkError   = "IDP_NETWORK_ERROR"
	ErrCodeIdPUserNotFound   = "IDP_USER_NOT_FOUND"
	ErrCodeIdPMalformedReply = "IDP_MALFORMED_REPLY"
	ErrCodeIdPWriteRejected  = "IDP_WRITE_REJECTED"
)

// Profile/metadata-specific errors
const (
	ErrCodeProfileMissing   = "PROFILE_MISSING"
	ErrCodeProfileMalformed = "PROFILE_MALFORMED"
)

// IdentityProviderErrorMessages holds human-readable messages for the
// codes above.
var IdentityProviderErrorMessages = map[string]string{
	ErrCodeIdPInvalidAPIKey:  "Identity provider rejected the configured API key",
	ErrCodeIdPRateLimited:    "Identity provider rate limit reached, try again shortly",
	ErrCodeIdPNetworkError:   "Could not reach the identity provider",
	ErrCodeIdPUserNotFound:   "User not found at the identity provider",
	ErrCodeIdPMalformedReply: "Identity provider returned a malformed response",
	ErrCodeIdPWriteRejected:  "Identity provider rejected the metadata update",
	ErrCodeProfileMissing:    "No profile metadata stored for this user",
	ErrCodeProfileMalformed:  "Stored profile metadata failed validation",
}

// GetIdPErrorMessage resolves a code to its message, with a generic
// fallback for unknown codes.
func GetIdPErrorMessage(code string) string {
	if msg, ok := IdentityProviderErrorMessages[code]; ok {
		return msg
	}
	return "Identity provider operation failed"
}
