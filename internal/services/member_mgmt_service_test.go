package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"shobukan/keikoban/internal/auth"
	"shobukan/keikoban/internal/common"
	"shobukan/keikoban/internal/constants"
	"shobukan/keikoban/internal/db/repositories"
	"shobukan/keikoban/internal/models/dtos"
	"shobukan/keikoban/internal/models/entities"
	gormModels "shobukan/keikoban/internal/models/gorm"
	"shobukan/keikoban/internal/providers"
)

func newTestMemberMgmt(t *testing.T, idp *mockIdentityAPI) (*MemberManagementService, *repositories.UserRepository) {
	t.Helper()
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	profiles := NewProfileService(idp, common.NewCacheService(60, 120))
	return NewMemberManagementService(userRepo, profiles), userRepo
}

func metadataForRoles(t *testing.T, roles map[string]string) func(ctx context.Context, idpUserID string) (*providers.IdPUser, int, error) {
	t.Helper()
	return func(ctx context.Context, idpUserID string) (*providers.IdPUser, int, error) {
		role, ok := roles[idpUserID]
		if !ok {
			return nil, 404, errors.New("user not found")
		}
		return idpUserWithMetadata(t, idpUserID, map[string]interface{}{
			"grade": 3,
			"role":  role,
		}), 200, nil
	}
}

func TestSetMemberRole_CaptainPromotesMember(t *testing.T) {
	idp := &mockIdentityAPI{}
	idp.getUserFunc = metadataForRoles(t, map[string]string{"idp-target": "member"})
	service, _ := newTestMemberMgmt(t, idp)

	err := service.SetMemberRole(context.Background(), constants.RoleCaptain, "idp-target", constants.RoleTreasurer)
	if err != nil {
		t.Fatalf("SetMemberRole failed: %v", err)
	}
	if idp.patchCalls != 1 {
		t.Errorf("patch called %d times, want 1", idp.patchCalls)
	}

	patched, ok := idp.lastPatched.(*entities.Profile)
	if !ok {
		t.Fatalf("patched payload type = %T, want *entities.Profile", idp.lastPatched)
	}
	if patched.Role != "treasurer" {
		t.Errorf("patched role = %q, want treasurer", patched.Role)
	}
	if patched.Grade != 3 {
		t.Errorf("patched grade = %d, want the existing 3 preserved", patched.Grade)
	}
}

func TestSetMemberRole_DeniedBelowTarget(t *testing.T) {
	idp := &mockIdentityAPI{}
	idp.getUserFunc = metadataForRoles(t, map[string]string{"idp-target": "captain"})
	service, _ := newTestMemberMgmt(t, idp)

	err := service.SetMemberRole(context.Background(), constants.RoleTreasurer, "idp-target", constants.RoleMember)
	var fErr *auth.ForbiddenError
	if !errors.As(err, &fErr) {
		t.Fatalf("err = %v, want *auth.ForbiddenError", err)
	}
	if fErr.Reason != auth.DenyInsufficientRank {
		t.Errorf("reason = %s, want %s", fErr.Reason, auth.DenyInsufficientRank)
	}
	if idp.patchCalls != 0 {
		t.Errorf("patch called %d times, want 0 on denial", idp.patchCalls)
	}
}

func TestSetMemberRole_DeniedForPlainMember(t *testing.T) {
	idp := &mockIdentityAPI{}
	idp.getUserFunc = metadataForRoles(t, map[string]string{"idp-target": "member"})
	service, _ := newTestMemberMgmt(t, idp)

	err := service.SetMemberRole(context.Background(), constants.RoleMember, "idp-target", constants.RoleTreasurer)
	var fErr *auth.ForbiddenError
	if !errors.As(err, &fErr) {
		t.Fatalf("err = %v, want *auth.ForbiddenError", err)
	}
	if fErr.Reason != auth.DenyNotManagement {
		t.Errorf("reason = %s, want %s", fErr.Reason, auth.DenyNotManagement)
	}
}

func TestUpdateMemberProfile_AllowsOutrankedTarget(t *testing.T) {
	idp := &mockIdentityAPI{}
	idp.getUserFunc = metadataForRoles(t, map[string]string{"idp-target": "member"})
	service, _ := newTestMemberMgmt(t, idp)

	newGrade := 1
	gradeAt := "2026-05-01"
	err := service.UpdateMemberProfile(context.Background(), constants.RoleViceCaptain, "idp-target", dtos.UpdateMemberProfileReq{
		Grade:      &newGrade,
		GetGradeAt: &gradeAt,
	})
	if err != nil {
		t.Fatalf("UpdateMemberProfile failed: %v", err)
	}

	patched, ok := idp.lastPatched.(*entities.Profile)
	if !ok {
		t.Fatalf("patched payload type = %T, want *entities.Profile", idp.lastPatched)
	}
	if patched.Grade != 1 || patched.GetGradeAt != "2026-05-01" {
		t.Errorf("patched profile = %+v", patched)
	}
	if patched.Role != "member" {
		t.Errorf("role changed to %q on a profile update", patched.Role)
	}
}

func TestUpdateMemberProfile_DeniedAtEqualRank(t *testing.T) {
	idp := &mockIdentityAPI{}
	idp.getUserFunc = metadataForRoles(t, map[string]string{"idp-target": "vice_captain"})
	service, _ := newTestMemberMgmt(t, idp)

	newGrade := 1
	err := service.UpdateMemberProfile(context.Background(), constants.RoleViceCaptain, "idp-target", dtos.UpdateMemberProfileReq{Grade: &newGrade})
	var fErr *auth.ForbiddenError
	if !errors.As(err, &fErr) {
		t.Fatalf("err = %v, want *auth.ForbiddenError", err)
	}
}

func TestListMembers_SkipsBrokenProfiles(t *testing.T) {
	idp := &mockIdentityAPI{}
	idp.getUserFunc = func(ctx context.Context, idpUserID string) (*providers.IdPUser, int, error) {
		if idpUserID == "idp-broken" {
			raw, _ := json.Marshal(map[string]interface{}{"role": "nonsense"})
			return &providers.IdPUser{ID: idpUserID, Metadata: raw}, 200, nil
		}
		return idpUserWithMetadata(t, idpUserID, map[string]interface{}{
			"grade": 4,
			"role":  "member",
		}), 200, nil
	}
	service, userRepo := newTestMemberMgmt(t, idp)
	ctx := context.Background()

	for _, u := range []struct{ idpID, name string }{
		{"idp-ok", "kenta"},
		{"idp-broken", "miyuki"},
	} {
		user := &gormModels.User{IdPUserID: u.idpID, Username: u.name, IsActive: true}
		if err := userRepo.Create(ctx, user); err != nil {
			t.Fatalf("failed to create user: %v", err)
		}
	}

	members, err := service.ListMembers(ctx)
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("got %d members, want 2", len(members))
	}

	byIdP := map[string]dtos.MemberSummary{}
	for _, m := range members {
		byIdP[m.IdPUserID] = m
	}

	if byIdP["idp-ok"].Profile == nil {
		t.Error("valid member should carry a profile")
	} else if byIdP["idp-ok"].Profile.GradeLabel != "4th kyu" {
		t.Errorf("GradeLabel = %q, want 4th kyu", byIdP["idp-ok"].Profile.GradeLabel)
	}
	if byIdP["idp-broken"].Profile != nil {
		t.Error("member with broken metadata should be listed without a profile")
	}
}
