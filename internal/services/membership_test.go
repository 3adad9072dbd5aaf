package services

import (
	"net/http"
	"testing"
)

func TestMembershipUpdateRole_OwnerOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMembershipService(db)

	owner := createUser(t, db, "owner")
	member := createUser(t, db, "member")
	project := createProject(t, db, owner.ID, "Campus App")
	membership := createMembership(t, db, project.ID, member.ID, "designer")

	_, err := svc.UpdateRole(member.ID, membership.ID, &UpdateMembershipRequest{Role: "lead designer"})
	wantStatus(t, err, http.StatusForbidden)

	updated, err := svc.UpdateRole(owner.ID, membership.ID, &UpdateMembershipRequest{Role: "lead designer"})
	if err != nil {
		t.Fatalf("UpdateRole() error = %v", err)
	}
	if updated.Role != "lead designer" {
		t.Errorf("role = %q after update", updated.Role)
	}
}

func TestMembershipDelete_OwnerOrSelf(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMembershipService(db)

	owner := createUser(t, db, "owner")
	member := createUser(t, db, "member")
	stranger := createUser(t, db, "stranger")
	project := createProject(t, db, owner.ID, "Campus App")

	// A stranger cannot remove anyone
	m1 := createMembership(t, db, project.ID, member.ID, "designer")
	err := svc.Delete(stranger.ID, m1.ID)
	wantStatus(t, err, http.StatusForbidden)

	// The member can leave
	if err := svc.Delete(member.ID, m1.ID); err != nil {
		t.Fatalf("self Delete() error = %v", err)
	}

	// The owner can remove
	m2 := createMembership(t, db, project.ID, member.ID, "designer")
	if err := svc.Delete(owner.ID, m2.ID); err != nil {
		t.Fatalf("owner Delete() error = %v", err)
	}

	err = svc.Delete(owner.ID, 9999)
	wantStatus(t, err, http.StatusNotFound)
}

func TestMembershipAdminCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMembershipService(db)

	owner := createUser(t, db, "owner")
	member := createUser(t, db, "member")
	project := createProject(t, db, owner.ID, "Campus App")

	membership, err := svc.AdminCreate(&CreateMembershipRequest{
		ProjectID: project.ID, UserID: member.ID, Role: "tester",
	})
	if err != nil {
		t.Fatalf("AdminCreate() error = %v", err)
	}
	if membership.Role != "tester" {
		t.Errorf("role = %q", membership.Role)
	}

	// Duplicate membership rejected
	_, err = svc.AdminCreate(&CreateMembershipRequest{
		ProjectID: project.ID, UserID: member.ID, Role: "tester",
	})
	wantStatus(t, err, http.StatusBadRequest)

	// Unknown project and user rejected
	_, err = svc.AdminCreate(&CreateMembershipRequest{ProjectID: 9999, UserID: member.ID, Role: "r"})
	wantStatus(t, err, http.StatusBadRequest)
	_, err = svc.AdminCreate(&CreateMembershipRequest{ProjectID: project.ID, UserID: 9999, Role: "r"})
	wantStatus(t, err, http.StatusBadRequest)
}
