package services

import (
	"errors"

	"github.com/campushq/teambuilder/internal/models"
	"github.com/campushq/teambuilder/pkg/response"
	"gorm.io/gorm"
)

type MembershipService struct {
	db *gorm.DB
}

func NewMembershipService(db *gorm.DB) *MembershipService {
	return &MembershipService{db: db}
}

type CreateMembershipRequest struct {
	ProjectID uint   `json:"project_id" binding:"required"`
	UserID    uint   `json:"user_id" binding:"required"`
	Role      string `json:"role" binding:"required,max=40"`
}

type UpdateMembershipRequest struct {
	Role string `json:"role" binding:"required,max=40"`
}

// List returns the caller's memberships.
func (s *MembershipService) List(userID uint) ([]models.Membership, error) {
	var memberships []models.Membership
	err := s.db.
		Preload("Project").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// Get returns a single membership. Any authenticated user may look one
// up; team composition is public.
func (s *MembershipService) Get(id uint) (*models.Membership, error) {
	var membership models.Membership
	err := s.db.
		Preload("Project").
		Preload("User").
		First(&membership, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("membership not found")
		}
		return nil, err
	}
	return &membership, nil
}

// UpdateRole changes a member's role. Only the project owner may do so.
func (s *MembershipService) UpdateRole(actorID, id uint, req *UpdateMembershipRequest) (*models.Membership, error) {
	var membership models.Membership
	if err := s.db.First(&membership, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("membership not found")
		}
		return nil, err
	}

	if !IsProjectOwner(s.db, membership.ProjectID, actorID) {
		return nil, response.NewForbidden("only the project owner may change roles")
	}

	if err := s.db.Model(&membership).Update("role", req.Role).Error; err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Delete removes a membership. The project owner may remove anyone; a
// member may remove themself.
func (s *MembershipService) Delete(actorID, id uint) error {
	var membership models.Membership
	if err := s.db.First(&membership, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("membership not found")
		}
		return err
	}

	if membership.UserID != actorID && !IsProjectOwner(s.db, membership.ProjectID, actorID) {
		return response.NewForbidden("only the project owner or the member may remove a membership")
	}

	return s.db.Delete(&membership).Error
}

// AdminCreate adds a membership directly, bypassing the request flow.
// Reserved for administrators.
func (s *MembershipService) AdminCreate(req *CreateMembershipRequest) (*models.Membership, error) {
	var project models.Project
	if err := s.db.First(&project, req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBadRequest("project does not exist")
		}
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBadRequest("user does not exist")
		}
		return nil, err
	}

	if IsProjectMember(s.db, req.ProjectID, req.UserID) {
		return nil, response.NewBadRequest("user is already a member of this project")
	}

	membership := models.Membership{
		ProjectID: req.ProjectID,
		UserID:    req.UserID,
		Role:      req.Role,
	}
	if err := s.db.Create(&membership).Error; err != nil {
		return nil, err
	}

	Notify(&NotifyTask{
		Event:       EventMemberJoined,
		ActorID:     req.UserID,
		RecipientID: req.UserID,
		ProjectID:   req.ProjectID,
		Role:        req.Role,
	})

	return s.Get(membership.ID)
}
