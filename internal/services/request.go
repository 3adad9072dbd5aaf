package services

import (
	"errors"

	"github.com/campushq/teambuilder/internal/models"
	"github.com/campushq/teambuilder/pkg/response"
	"gorm.io/gorm"
)

// RequestService implements the join request lifecycle. A request is
// created pending and moves exactly once to accepted, declined or
// cancelled; acceptance creates the membership in the same transaction.
type RequestService struct {
	db *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{db: db}
}

type CreateRequestRequest struct {
	RequesteeID uint   `json:"requestee_id" binding:"required"`
	ProjectID   uint   `json:"project_id" binding:"required"`
	Role        string `json:"role" binding:"required,max=40"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create validates and persists a new pending request on behalf of
// requesterID. Checks run in a fixed order and the first violation is
// reported; nothing is persisted on failure.
func (s *RequestService) Create(requesterID uint, req *CreateRequestRequest) (*models.Request, error) {
	var requestee models.User
	if err := s.db.First(&requestee, req.RequesteeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBadRequest("requestee does not exist")
		}
		return nil, err
	}

	var project models.Project
	if err := s.db.First(&project, req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBadRequest("project does not exist")
		}
		return nil, err
	}

	if requesterID == req.RequesteeID {
		return nil, response.NewBadRequest("cannot send a request to yourself")
	}

	if HasActiveRequestBetween(s.db, req.ProjectID, requesterID, req.RequesteeID) {
		return nil, response.NewBadRequest("an active request already exists between these users for this project")
	}

	// Exactly one side of every request is the project owner: either the
	// owner invites a student, or a student asks the owner to join.
	if !project.IsOwnedBy(requesterID) && !project.IsOwnedBy(req.RequesteeID) {
		return nil, response.NewBadRequest("either the requester or the requestee must own the project")
	}

	if IsProjectMember(s.db, req.ProjectID, requesterID) || IsProjectMember(s.db, req.ProjectID, req.RequesteeID) {
		return nil, response.NewBadRequest("user is already a member of this project")
	}

	request := models.Request{
		RequesterID: requesterID,
		RequesteeID: req.RequesteeID,
		ProjectID:   req.ProjectID,
		Role:        req.Role,
		Status:      models.StatusPending,
		IsActive:    true,
	}
	if err := s.db.Create(&request).Error; err != nil {
		return nil, err
	}

	Notify(&NotifyTask{
		Event:       EventRequestCreated,
		ActorID:     requesterID,
		RecipientID: req.RequesteeID,
		ProjectID:   req.ProjectID,
		RequestID:   request.ID,
		Role:        req.Role,
	})

	return &request, nil
}

// List returns the caller's active requests, newest first.
func (s *RequestService) List(userID uint) ([]models.Request, error) {
	var requests []models.Request
	err := s.db.
		Preload("Requester").
		Preload("Requestee").
		Preload("Project").
		Where("is_active = ?", true).
		Where("requester_id = ? OR requestee_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// Get returns a single active request the caller participates in.
// Inactive requests are indistinguishable from missing ones.
func (s *RequestService) Get(userID, id uint) (*models.Request, error) {
	var request models.Request
	err := s.db.
		Preload("Requester").
		Preload("Requestee").
		Preload("Project").
		First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("request not found")
		}
		return nil, err
	}

	if !request.IsActive {
		return nil, response.NewNotFound("request not found")
	}
	if !request.IsParticipant(userID) {
		return nil, response.NewForbidden("not a participant of this request")
	}

	return &request, nil
}

// Transition moves a pending request to a terminal status. Accepting
// creates the membership for the non-owner participant atomically with
// the status flip; the update is guarded on is_active so a request that
// lost a race is reported as not found.
func (s *RequestService) Transition(userID, id uint, req *TransitionRequest) (*models.Request, error) {
	var request models.Request
	if err := s.db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("request not found")
		}
		return nil, err
	}

	if !request.IsActive {
		return nil, response.NewNotFound("request not found")
	}
	if !request.IsParticipant(userID) {
		return nil, response.NewForbidden("not a participant of this request")
	}

	status := req.Status
	if !models.TerminalStatus(status) {
		return nil, response.NewBadRequest("status must be one of ACP, DCN, CNL")
	}

	// The requester may only withdraw; the requestee may only answer.
	if userID == request.RequesterID && status != models.StatusCancelled {
		return nil, response.NewBadRequest("requester may only cancel a request")
	}
	if userID == request.RequesteeID && status == models.StatusCancelled {
		return nil, response.NewBadRequest("requestee may only accept or decline a request")
	}

	var membership *models.Membership

	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Request{}).
			Where("id = ? AND is_active = ?", id, true).
			Updates(map[string]interface{}{
				"status":    status,
				"is_active": false,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Lost the race: another transition already made it terminal.
			return response.NewNotFound("request not found")
		}

		if status == models.StatusAccepted {
			var project models.Project
			if err := tx.First(&project, request.ProjectID).Error; err != nil {
				return err
			}

			joiner := request.RequesterID
			if project.IsOwnedBy(joiner) {
				joiner = request.RequesteeID
			}

			membership = &models.Membership{
				ProjectID: request.ProjectID,
				UserID:    joiner,
				Role:      request.Role,
			}
			if err := tx.Create(membership).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	request.Status = status
	request.StatusName = models.StatusName(status)
	request.IsActive = false

	other := request.RequesterID
	if userID == request.RequesterID {
		other = request.RequesteeID
	}

	event := map[string]string{
		models.StatusAccepted:  EventRequestAccepted,
		models.StatusDeclined:  EventRequestDeclined,
		models.StatusCancelled: EventRequestCancelled,
	}[status]
	Notify(&NotifyTask{
		Event:       event,
		ActorID:     userID,
		RecipientID: other,
		ProjectID:   request.ProjectID,
		RequestID:   request.ID,
		Role:        request.Role,
	})
	if membership != nil {
		Notify(&NotifyTask{
			Event:       EventMemberJoined,
			ActorID:     userID,
			RecipientID: membership.UserID,
			ProjectID:   membership.ProjectID,
			RequestID:   request.ID,
			Role:        membership.Role,
		})
	}

	return &request, nil
}
