package services

import (
	"net/http"
	"testing"
)

func TestPrivateMessages_TeamOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db)

	owner := createUser(t, db, "owner")
	member := createUser(t, db, "member")
	outsider := createUser(t, db, "outsider")
	project := createProject(t, db, owner.ID, "Campus App")
	createMembership(t, db, project.ID, member.ID, "designer")

	if _, err := svc.CreatePrivate(owner.ID, project.ID, &CreateMessageRequest{Message: "hello team"}); err != nil {
		t.Fatalf("owner CreatePrivate() error = %v", err)
	}
	if _, err := svc.CreatePrivate(member.ID, project.ID, &CreateMessageRequest{Message: "hi"}); err != nil {
		t.Fatalf("member CreatePrivate() error = %v", err)
	}

	_, err := svc.CreatePrivate(outsider.ID, project.ID, &CreateMessageRequest{Message: "let me in"})
	wantStatus(t, err, http.StatusForbidden)

	_, err = svc.ListPrivate(outsider.ID, project.ID)
	wantStatus(t, err, http.StatusForbidden)

	messages, err := svc.ListPrivate(member.ID, project.ID)
	if err != nil {
		t.Fatalf("ListPrivate() error = %v", err)
	}
	if len(messages) != 2 {
		t.Errorf("ListPrivate() returned %d messages, expected 2", len(messages))
	}
}

func TestPrivateMessages_ProjectMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db)
	user := createUser(t, db, "user")

	_, err := svc.ListPrivate(user.ID, 9999)
	wantStatus(t, err, http.StatusNotFound)

	_, err = svc.CreatePrivate(user.ID, 9999, &CreateMessageRequest{Message: "x"})
	wantStatus(t, err, http.StatusNotFound)
}

func TestPublicMessages_OpenToEveryone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db)

	owner := createUser(t, db, "owner")
	outsider := createUser(t, db, "outsider")
	project := createProject(t, db, owner.ID, "Campus App")

	created, err := svc.CreatePublic(outsider.ID, project.ID, &CreateMessageRequest{Message: "looks interesting"})
	if err != nil {
		t.Fatalf("CreatePublic() error = %v", err)
	}

	messages, err := svc.ListPublic(project.ID)
	if err != nil {
		t.Fatalf("ListPublic() error = %v", err)
	}
	if len(messages) != 1 || messages[0].ID != created.ID {
		t.Errorf("ListPublic() returned %d messages", len(messages))
	}

	got, err := svc.GetPublic(project.ID, created.ID)
	if err != nil {
		t.Fatalf("GetPublic() error = %v", err)
	}
	if got.Message != "looks interesting" {
		t.Errorf("message = %q", got.Message)
	}

	_, err = svc.GetPublic(project.ID, 9999)
	wantStatus(t, err, http.StatusNotFound)
}
