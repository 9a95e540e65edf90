package constants

import (
	"database/sql/driver"
	"fmt"
)

// ClubRole mirrors the role labels stored in the identity provider's
// user metadata. Ordering is by management rank, lowest first.
type ClubRole string

const (
	RoleMember      ClubRole = "member"
	RoleTreasurer   ClubRole = "treasurer"
	RoleViceCaptain ClubRole = "vice_captain"
	RoleCaptain     ClubRole = "captain"
	RoleAdmin       ClubRole = "admin"

	RoleUnknown ClubRole = "unknown"
)

// roleRanks is the total order over the role set. Anything absent ranks
// below member.
var roleRanks = map[ClubRole]int{
	RoleMember:      0,
	RoleTreasurer:   1,
	RoleViceCaptain: 2,
	RoleCaptain:     3,
	RoleAdmin:       4,
}

var roleLabels = map[ClubRole]string{
	RoleMember:      "Member",
	RoleTreasurer:   "Treasurer",
	RoleViceCaptain: "Vice Captain",
	RoleCaptain:     "Captain",
	RoleAdmin:       "Admin",
}

// Stringer ­– convenient for fmt / logs
func (r ClubRole) String() string { return string(r) }

// Rank returns the position of the role in the hierarchy. Unknown roles
// rank at -1, below every valid role.
func (r ClubRole) Rank() int {
	if rank, ok := roleRanks[r]; ok {
		return rank
	}
	return -1
}

// IsValid reports whether the role is one of the five club roles.
func (r ClubRole) IsValid() bool {
	_, ok := roleRanks[r]
	return ok
}

// IsManagement reports whether the role carries any management
// capability. Only plain members (and unknown roles) are excluded.
func (r ClubRole) IsManagement() bool {
	return r.IsValid() && r != RoleMember
}

// Outranks reports whether r is strictly higher than other in the
// role hierarchy.
func (r ClubRole) Outranks(other ClubRole) bool {
	return r.Rank() > other.Rank()
}

// Label returns the display label for the role, or "unknown" for
// anything outside the role set.
func (r ClubRole) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return string(RoleUnknown)
}

// ParseRole converts a raw metadata string into a ClubRole.
// Never fails; unmapped input yields RoleUnknown.
func ParseRole(s string) ClubRole {
	r := ClubRole(s)
	if r.IsValid() {
		return r
	}
	return RoleUnknown
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *ClubRole) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = ClubRole(v)
	case []byte:
		*r = ClubRole(v)
	default:
		return fmt.Errorf("ClubRole: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r ClubRole) Value() (driver.Value, error) { return string(r), nil }
