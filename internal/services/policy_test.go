package services

import "testing"

func TestPolicyPredicates(t *testing.T) {
	db := setupTestDB(t)

	owner := createUser(t, db, "owner")
	member := createUser(t, db, "member")
	outsider := createUser(t, db, "outsider")
	project := createProject(t, db, owner.ID, "Campus App")
	createMembership(t, db, project.ID, member.ID, "designer")

	if !IsProjectOwner(db, project.ID, owner.ID) {
		t.Error("owner predicate failed")
	}
	if IsProjectOwner(db, project.ID, member.ID) {
		t.Error("member is not the owner")
	}

	if !IsProjectMember(db, project.ID, member.ID) {
		t.Error("member predicate failed")
	}
	if IsProjectMember(db, project.ID, owner.ID) {
		t.Error("ownership does not create a membership row")
	}

	if !IsOwnerOrMember(db, project.ID, owner.ID) || !IsOwnerOrMember(db, project.ID, member.ID) {
		t.Error("owner and member both belong to the team")
	}
	if IsOwnerOrMember(db, project.ID, outsider.ID) {
		t.Error("outsider is not on the team")
	}

	if IsProjectOwner(db, project.ID, 0) || IsProjectMember(db, project.ID, 0) {
		t.Error("zero user id matches nothing")
	}
}
