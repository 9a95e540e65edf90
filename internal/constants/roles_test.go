package constants

import "testing"

func TestRoleOrdering(t *testing.T) {
	order := []ClubRole{RoleMember, RoleTreasurer, RoleViceCaptain, RoleCaptain, RoleAdmin}

	for i := 1; i < len(order); i++ {
		if !order[i].Outranks(order[i-1]) {
			t.Errorf("expected %s to outrank %s", order[i], order[i-1])
		}
		if order[i-1].Outranks(order[i]) {
			t.Errorf("did not expect %s to outrank %s", order[i-1], order[i])
		}
	}

	if RoleCaptain.Outranks(RoleCaptain) {
		t.Error("a role must not outrank itself")
	}
}

func TestUnknownRoleRanksBelowMember(t *testing.T) {
	if !RoleMember.Outranks(RoleUnknown) {
		t.Error("member should outrank an unknown role")
	}
	if RoleUnknown.Rank() != -1 {
		t.Errorf("unknown role rank = %d, want -1", RoleUnknown.Rank())
	}
}

func TestIsManagement(t *testing.T) {
	cases := []struct {
		role ClubRole
		want bool
	}{
		{RoleMember, false},
		{RoleTreasurer, true},
		{RoleViceCaptain, true},
		{RoleCaptain, true},
		{RoleAdmin, true},
		{RoleUnknown, false},
		{ClubRole("janitor"), false},
	}

	for _, c := range cases {
		if got := c.role.IsManagement(); got != c.want {
			t.Errorf("IsManagement(%s) = %v, want %v", c.role, got, c.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if got := ParseRole("vice_captain"); got != RoleViceCaptain {
		t.Errorf("ParseRole(vice_captain) = %s", got)
	}
	if got := ParseRole("supreme_leader"); got != RoleUnknown {
		t.Errorf("ParseRole(supreme_leader) = %s, want unknown", got)
	}
	if got := ParseRole(""); got != RoleUnknown {
		t.Errorf("ParseRole(empty) = %s, want unknown", got)
	}
}

func TestRoleLabel(t *testing.T) {
	if got := RoleViceCaptain.Label(); got != "Vice Captain" {
		t.Errorf("Label = %q", got)
	}
	if got := ClubRole("whatever").Label(); got != "unknown" {
		t.Errorf("Label for invalid role = %q, want unknown", got)
	}
}
