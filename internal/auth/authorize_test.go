package auth

import (
	"testing"

	"shobukan/keikoban/internal/constants"
)

func TestAuthorizeMemberAlwaysDenied(t *testing.T) {
	for _, requested := range []constants.ClubRole{
		constants.RoleMember,
		constants.RoleTreasurer,
		constants.RoleAdmin,
	} {
		d := Authorize(constants.RoleMember, constants.RoleMember, requested)
		if d.Allowed {
			t.Errorf("member promoting to %s should be denied", requested)
		}
		if d.Reason != DenyNotManagement {
			t.Errorf("reason = %s, want %s", d.Reason, DenyNotManagement)
		}
	}
}

func TestAuthorizeCaptainPromotesMemberToTreasurer(t *testing.T) {
	d := Authorize(constants.RoleCaptain, constants.RoleMember, constants.RoleTreasurer)
	if !d.Allowed {
		t.Errorf("captain promoting a member to treasurer should be allowed, got reason %s", d.Reason)
	}
}

func TestAuthorizeRequiresStrictRankOverTarget(t *testing.T) {
	d := Authorize(constants.RoleTreasurer, constants.RoleCaptain, constants.RoleMember)
	if d.Allowed {
		t.Error("treasurer demoting a captain should be denied")
	}
	if d.Reason != DenyInsufficientRank {
		t.Errorf("reason = %s, want %s", d.Reason, DenyInsufficientRank)
	}
}

func TestAuthorizeRequiresStrictRankOverRequested(t *testing.T) {
	d := Authorize(constants.RoleViceCaptain, constants.RoleMember, constants.RoleViceCaptain)
	if d.Allowed {
		t.Error("vice captain assigning their own rank should be denied")
	}
	if d.Reason != DenyInsufficientRank {
		t.Errorf("reason = %s, want %s", d.Reason, DenyInsufficientRank)
	}

	d = Authorize(constants.RoleViceCaptain, constants.RoleMember, constants.RoleCaptain)
	if d.Allowed {
		t.Error("vice captain assigning captain should be denied")
	}
}

func TestAuthorizeEqualRankDenied(t *testing.T) {
	d := Authorize(constants.RoleCaptain, constants.RoleCaptain, constants.RoleMember)
	if d.Allowed {
		t.Error("captain acting on a peer captain should be denied")
	}
}

func TestAuthorizeAdminOverEveryoneBelow(t *testing.T) {
	for _, target := range []constants.ClubRole{
		constants.RoleMember,
		constants.RoleTreasurer,
		constants.RoleViceCaptain,
		constants.RoleCaptain,
	} {
		d := Authorize(constants.RoleAdmin, target, constants.RoleMember)
		if !d.Allowed {
			t.Errorf("admin demoting %s should be allowed, got reason %s", target, d.Reason)
		}
	}

	d := Authorize(constants.RoleAdmin, constants.RoleAdmin, constants.RoleMember)
	if d.Allowed {
		t.Error("admin acting on a peer admin should be denied")
	}
}

func TestAuthorizeUnknownTargetRole(t *testing.T) {
	d := Authorize(constants.RoleTreasurer, constants.RoleUnknown, constants.RoleMember)
	if !d.Allowed {
		t.Errorf("treasurer acting on an unknown-role target should be allowed, got reason %s", d.Reason)
	}
}

func TestForbiddenErrorMessages(t *testing.T) {
	e := &ForbiddenError{Reason: DenyNotManagement}
	if e.Error() != "forbidden: management role required" {
		t.Errorf("unexpected message %q", e.Error())
	}
	e = &ForbiddenError{Reason: DenyInsufficientRank}
	if e.Error() != "forbidden: insufficient rank" {
		t.Errorf("unexpected message %q", e.Error())
	}
}
