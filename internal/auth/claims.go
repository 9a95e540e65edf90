package auth

import "shobukan/keikoban/internal/constants"

// Common interface.
/**
* Should contain:
	- UserId (local row)
	- Identity provider user id
	- Role
	- Source of authentication
*/
type UserClaims interface {
	UserID() string
	IdPUserID() string
	Username() string
	Role() constants.ClubRole
	Source() string
}

// SessionClaims is built from the identity provider's session cookie
// after the local user row and cached profile have been resolved.
type SessionClaims struct {
	LocalUserID  string
	IdPUserIDVal string
	UsernameVal  string
	RoleValue    constants.ClubRole
}

func (c *SessionClaims) UserID() string           { return c.LocalUserID }
func (c *SessionClaims) IdPUserID() string        { return c.IdPUserIDVal }
func (c *SessionClaims) Username() string         { return c.UsernameVal }
func (c *SessionClaims) Role() constants.ClubRole { return c.RoleValue }
func (c *SessionClaims) Source() string           { return "SESSION" }

// WebhookClaims represents a signature-verified call from the identity
// provider itself, not from a member.
type WebhookClaims struct{}

func (c *WebhookClaims) UserID() string           { return "" }
func (c *WebhookClaims) IdPUserID() string        { return "" }
func (c *WebhookClaims) Username() string         { return "identity-provider" }
func (c *WebhookClaims) Role() constants.ClubRole { return constants.RoleUnknown }
func (c *WebhookClaims) Source() string           { return "WEBHOOK" }
