package services

import (
	"errors"

	"github.com/campushq/teambuilder/internal/models"
	"github.com/campushq/teambuilder/pkg/response"
	"gorm.io/gorm"
)

type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

type CreateMessageRequest struct {
	Message string `json:"message" binding:"required,max=1000"`
}

func (s *MessageService) projectExists(projectID uint) error {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("project not found")
		}
		return err
	}
	return nil
}

// --- Private messages: owner and members only ---

func (s *MessageService) ListPrivate(actorID, projectID uint) ([]models.PrivateMessage, error) {
	if err := s.projectExists(projectID); err != nil {
		return nil, err
	}
	if !IsOwnerOrMember(s.db, projectID, actorID) {
		return nil, response.NewForbidden("private messages are restricted to the project team")
	}

	var messages []models.PrivateMessage
	err := s.db.
		Preload("User").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *MessageService) GetPrivate(actorID, projectID, id uint) (*models.PrivateMessage, error) {
	if err := s.projectExists(projectID); err != nil {
		return nil, err
	}
	if !IsOwnerOrMember(s.db, projectID, actorID) {
		return nil, response.NewForbidden("private messages are restricted to the project team")
	}

	var message models.PrivateMessage
	err := s.db.
		Preload("User").
		Where("project_id = ?", projectID).
		First(&message, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("message not found")
		}
		return nil, err
	}
	return &message, nil
}

func (s *MessageService) CreatePrivate(actorID, projectID uint, req *CreateMessageRequest) (*models.PrivateMessage, error) {
	if err := s.projectExists(projectID); err != nil {
		return nil, err
	}
	if !IsOwnerOrMember(s.db, projectID, actorID) {
		return nil, response.NewForbidden("private messages are restricted to the project team")
	}

	message := models.PrivateMessage{
		UserID:    actorID,
		ProjectID: projectID,
		Message:   req.Message,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, err
	}

	var project models.Project
	if err := s.db.First(&project, projectID).Error; err == nil && project.OwnerID != actorID {
		Notify(&NotifyTask{
			Event:       EventPrivateMessage,
			ActorID:     actorID,
			RecipientID: project.OwnerID,
			ProjectID:   projectID,
		})
	}

	if err := s.db.Preload("User").First(&message, message.ID).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// --- Public messages: readable and writable by any signed-in user ---

func (s *MessageService) ListPublic(projectID uint) ([]models.PublicMessage, error) {
	if err := s.projectExists(projectID); err != nil {
		return nil, err
	}

	var messages []models.PublicMessage
	err := s.db.
		Preload("User").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *MessageService) GetPublic(projectID, id uint) (*models.PublicMessage, error) {
	if err := s.projectExists(projectID); err != nil {
		return nil, err
	}

	var message models.PublicMessage
	err := s.db.
		Preload("User").
		Where("project_id = ?", projectID).
		First(&message, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("message not found")
		}
		return nil, err
	}
	return &message, nil
}

func (s *MessageService) CreatePublic(actorID, projectID uint, req *CreateMessageRequest) (*models.PublicMessage, error) {
	if err := s.projectExists(projectID); err != nil {
		return nil, err
	}

	message := models.PublicMessage{
		UserID:    actorID,
		ProjectID: projectID,
		Message:   req.Message,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("User").First(&message, message.ID).Error; err != nil {
		return nil, err
	}
	return &message, nil
}
