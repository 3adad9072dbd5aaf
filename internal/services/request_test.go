package services

import (
	"net/http"
	"testing"

	"github.com/campushq/teambuilder/internal/models"
)

func TestRequestCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRequestService(db)

	owner := createUser(t, db, "owner")
	student := createUser(t, db, "student")
	project := createProject(t, db, owner.ID, "Campus App")

	request, err := svc.Create(student.ID, &CreateRequestRequest{
		RequesteeID: owner.ID,
		ProjectID:   project.ID,
		Role:        "backend developer",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if request.Status != models.StatusPending {
		t.Errorf("new request status = %q, expected %q", request.Status, models.StatusPending)
	}
	if !request.IsActive {
		t.Error("new request should be active")
	}
	if request.RequesterID != student.ID {
		t.Errorf("requester = %d, expected the caller %d", request.RequesterID, student.ID)
	}
}

func TestRequestCreate_ValidationOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRequestService(db)

	owner := createUser(t, db, "owner")
	student := createUser(t, db, "student")
	bystander := createUser(t, db, "bystander")
	project := createProject(t, db, owner.ID, "Campus App")

	t.Run("missing requestee", func(t *testing.T) {
		_, err := svc.Create(student.ID, &CreateRequestRequest{
			RequesteeID: 9999, ProjectID: project.ID, Role: "r",
		})
		wantStatus(t, err, http.StatusBadRequest)
	})

	t.Run("missing project", func(t *testing.T) {
		_, err := svc.Create(student.ID, &CreateRequestRequest{
			RequesteeID: owner.ID, ProjectID: 9999, Role: "r",
		})
		wantStatus(t, err, http.StatusBadRequest)
	})

	t.Run("self request", func(t *testing.T) {
		_, err := svc.Create(owner.ID, &CreateRequestRequest{
			RequesteeID: owner.ID, ProjectID: project.ID, Role: "r",
		})
		wantStatus(t, err, http.StatusBadRequest)
	})

	t.Run("neither side owns the project", func(t *testing.T) {
		_, err := svc.Create(student.ID, &CreateRequestRequest{
			RequesteeID: bystander.ID, ProjectID: project.ID, Role: "r",
		})
		wantStatus(t, err, http.StatusBadRequest)
	})
}

func TestRequestCreate_DuplicateActive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRequestService(db)

	owner := createUser(t, db, "owner")
	student := createUser(t, db, "student")
	project := createProject(t, db, owner.ID, "Campus App")

	if _, err := svc.Create(student.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project.ID, Role: "r",
	}); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	// Same direction
	_, err := svc.Create(student.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project.ID, Role: "r",
	})
	wantStatus(t, err, http.StatusBadRequest)

	// Opposite direction is also blocked
	_, err = svc.Create(owner.ID, &CreateRequestRequest{
		RequesteeID: student.ID, ProjectID: project.ID, Role: "r",
	})
	wantStatus(t, err, http.StatusBadRequest)
}

func TestRequestCreate_AfterTerminalAllowed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRequestService(db)

	owner := createUser(t, db, "owner")
	student := createUser(t, db, "student")
	project := createProject(t, db, owner.ID, "Campus App")

	first, err := svc.Create(student.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project.ID, Role: "r",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.Transition(owner.ID, first.ID, &TransitionRequest{Status: models.StatusDeclined}); err != nil {
		t.Fatalf("Transition() error = %v", err)
	}

	// A declined request no longer blocks a new one
	if _, err := svc.Create(student.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project.ID, Role: "r",
	}); err != nil {
		t.Errorf("Create() after decline error = %v", err)
	}
}

func TestRequestCreate_AlreadyMember(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRequestService(db)

	owner := createUser(t, db, "owner")
	member := createUser(t, db, "member")
	project := createProject(t, db, owner.ID, "Campus App")
	createMembership(t, db, project.ID, member.ID, "designer")

	_, err := svc.Create(member.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project.ID, Role: "r",
	})
	wantStatus(t, err, http.StatusBadRequest)
}

func TestRequestGet(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRequestService(db)

	owner := createUser(t, db, "owner")
	student := createUser(t, db, "student")
	stranger := createUser(t, db, "stranger")
	project := createProject(t, db, owner.ID, "Campus App")

	request, _ := svc.Create(student.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project.ID, Role: "r",
	})

	if _, err := svc.Get(student.ID, request.ID); err != nil {
		t.Errorf("requester Get() error = %v", err)
	}
	if _, err := svc.Get(owner.ID, request.ID); err != nil {
		t.Errorf("requestee Get() error = %v", err)
	}

	_, err := svc.Get(stranger.ID, request.ID)
	wantStatus(t, err, http.StatusForbidden)

	_, err = svc.Get(student.ID, 9999)
	wantStatus(t, err, http.StatusNotFound)
}

func TestRequestGet_InactiveInvisible(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRequestService(db)

	owner := createUser(t, db, "owner")
	student := createUser(t, db, "student")
	project := createProject(t, db, owner.ID, "Campus App")

	request, _ := svc.Create(student.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project.ID, Role: "r",
	})
	if _, err := svc.Transition(student.ID, request.ID, &TransitionRequest{Status: models.StatusCancelled}); err != nil {
		t.Fatalf("Transition() error = %v", err)
	}

	// Terminal requests read as not found even for participants
	_, err := svc.Get(student.ID, request.ID)
	wantStatus(t, err, http.StatusNotFound)
}

func TestRequestList_OnlyActiveAndParticipant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRequestService(db)

	owner := createUser(t, db, "owner")
	student := createUser(t, db, "student")
	other := createUser(t, db, "other")
	project := createProject(t, db, owner.ID, "Campus App")
	project2 := createProject(t, db, owner.ID, "Other App")

	active, _ := svc.Create(student.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project.ID, Role: "r",
	})
	cancelled, _ := svc.Create(student.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project2.ID, Role: "r",
	})
	svc.Transition(student.ID, cancelled.ID, &TransitionRequest{Status: models.StatusCancelled})
	svc.Create(other.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project.ID, Role: "r",
	})

	requests, err := svc.List(student.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(requests) != 1 {
		t.Fatalf("List() returned %d requests, expected 1", len(requests))
	}
	if requests[0].ID != active.ID {
		t.Errorf("List() returned request %d, expected %d", requests[0].ID, active.ID)
	}
}

func TestRequestAccept_CreatesMembership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRequestService(db)

	owner := createUser(t, db, "owner")
	student := createUser(t, db, "student")
	project := createProject(t, db, owner.ID, "Campus App")

	request, _ := svc.Create(student.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project.ID, Role: "backend developer",
	})

	accepted, err := svc.Transition(owner.ID, request.ID, &TransitionRequest{Status: models.StatusAccepted})
	if err != nil {
		t.Fatalf("Transition() error = %v", err)
	}

	if accepted.Status != models.StatusAccepted || accepted.IsActive {
		t.Errorf("accepted request: status=%q is_active=%v", accepted.Status, accepted.IsActive)
	}

	var membership models.Membership
	if err := db.Where("project_id = ? AND user_id = ?", project.ID, student.ID).First(&membership).Error; err != nil {
		t.Fatalf("membership not created: %v", err)
	}
	if membership.Role != "backend developer" {
		t.Errorf("membership role = %q, expected the request role", membership.Role)
	}
}

func TestRequestAccept_OwnerInvite(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRequestService(db)

	owner := createUser(t, db, "owner")
	student := createUser(t, db, "student")
	project := createProject(t, db, owner.ID, "Campus App")

	// Owner invites the student; the student accepts and joins.
	request, err := svc.Create(owner.ID, &CreateRequestRequest{
		RequesteeID: student.ID, ProjectID: project.ID, Role: "designer",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.Transition(student.ID, request.ID, &TransitionRequest{Status: models.StatusAccepted}); err != nil {
		t.Fatalf("Transition() error = %v", err)
	}

	var membership models.Membership
	if err := db.Where("project_id = ? AND user_id = ?", project.ID, student.ID).First(&membership).Error; err != nil {
		t.Fatalf("membership not created for the invited student: %v", err)
	}
}

func TestRequestTransition_RoleOfParties(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRequestService(db)

	owner := createUser(t, db, "owner")
	student := createUser(t, db, "student")
	project := createProject(t, db, owner.ID, "Campus App")

	request, _ := svc.Create(student.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project.ID, Role: "r",
	})

	// Requester cannot accept or decline their own request
	_, err := svc.Transition(student.ID, request.ID, &TransitionRequest{Status: models.StatusAccepted})
	wantStatus(t, err, http.StatusBadRequest)
	_, err = svc.Transition(student.ID, request.ID, &TransitionRequest{Status: models.StatusDeclined})
	wantStatus(t, err, http.StatusBadRequest)

	// Requestee cannot cancel
	_, err = svc.Transition(owner.ID, request.ID, &TransitionRequest{Status: models.StatusCancelled})
	wantStatus(t, err, http.StatusBadRequest)

	// Pending is not a terminal status
	_, err = svc.Transition(owner.ID, request.ID, &TransitionRequest{Status: models.StatusPending})
	wantStatus(t, err, http.StatusBadRequest)

	// Nothing above changed the request
	var stored models.Request
	db.First(&stored, request.ID)
	if stored.Status != models.StatusPending || !stored.IsActive {
		t.Errorf("failed transitions must not mutate: status=%q is_active=%v", stored.Status, stored.IsActive)
	}
}

func TestRequestTransition_TerminalSticky(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRequestService(db)

	owner := createUser(t, db, "owner")
	student := createUser(t, db, "student")
	project := createProject(t, db, owner.ID, "Campus App")

	request, _ := svc.Create(student.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project.ID, Role: "r",
	})

	if _, err := svc.Transition(owner.ID, request.ID, &TransitionRequest{Status: models.StatusAccepted}); err != nil {
		t.Fatalf("first Transition() error = %v", err)
	}

	// A second transition of any kind reads as not found
	_, err := svc.Transition(owner.ID, request.ID, &TransitionRequest{Status: models.StatusDeclined})
	wantStatus(t, err, http.StatusNotFound)
	_, err = svc.Transition(student.ID, request.ID, &TransitionRequest{Status: models.StatusCancelled})
	wantStatus(t, err, http.StatusNotFound)

	if n := membershipCount(db, project.ID); n != 1 {
		t.Errorf("membership count = %d, expected exactly 1", n)
	}
}

func TestRequestTransition_DeclineAndCancelNoSideEffect(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRequestService(db)

	owner := createUser(t, db, "owner")
	student := createUser(t, db, "student")
	project := createProject(t, db, owner.ID, "Campus App")

	declined, _ := svc.Create(student.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project.ID, Role: "r",
	})
	if _, err := svc.Transition(owner.ID, declined.ID, &TransitionRequest{Status: models.StatusDeclined}); err != nil {
		t.Fatalf("Transition() error = %v", err)
	}

	cancelled, _ := svc.Create(student.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project.ID, Role: "r",
	})
	if _, err := svc.Transition(student.ID, cancelled.ID, &TransitionRequest{Status: models.StatusCancelled}); err != nil {
		t.Fatalf("Transition() error = %v", err)
	}

	if n := membershipCount(db, project.ID); n != 0 {
		t.Errorf("decline and cancel must not create memberships, found %d", n)
	}
}

func TestRequestTransition_NonParticipant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRequestService(db)

	owner := createUser(t, db, "owner")
	student := createUser(t, db, "student")
	stranger := createUser(t, db, "stranger")
	project := createProject(t, db, owner.ID, "Campus App")

	request, _ := svc.Create(student.ID, &CreateRequestRequest{
		RequesteeID: owner.ID, ProjectID: project.ID, Role: "r",
	})

	_, err := svc.Transition(stranger.ID, request.ID, &TransitionRequest{Status: models.StatusAccepted})
	wantStatus(t, err, http.StatusForbidden)
}
