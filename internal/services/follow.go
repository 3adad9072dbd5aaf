package services

import (
	"errors"

	"github.com/campushq/teambuilder/internal/models"
	"github.com/campushq/teambuilder/pkg/response"
	"gorm.io/gorm"
)

type FollowService struct {
	db *gorm.DB
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

type CreateFollowRequest struct {
	ProjectID uint `json:"project_id" binding:"required"`
}

// List returns the caller's follows.
func (s *FollowService) List(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := s.db.
		Preload("Project").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&follows).Error
	if err != nil {
		return nil, err
	}
	return follows, nil
}

func (s *FollowService) Create(userID uint, req *CreateFollowRequest) (*models.Follow, error) {
	var project models.Project
	if err := s.db.First(&project, req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBadRequest("project does not exist")
		}
		return nil, err
	}

	var count int64
	s.db.Model(&models.Follow{}).
		Where("user_id = ? AND project_id = ?", userID, req.ProjectID).
		Count(&count)
	if count > 0 {
		return nil, response.NewBadRequest("already following this project")
	}

	follow := models.Follow{
		UserID:    userID,
		ProjectID: req.ProjectID,
	}
	if err := s.db.Create(&follow).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Project").First(&follow, follow.ID).Error; err != nil {
		return nil, err
	}
	return &follow, nil
}

// Get returns one of the caller's follows; other users' follows are off
// limits.
func (s *FollowService) Get(userID, id uint) (*models.Follow, error) {
	var follow models.Follow
	if err := s.db.Preload("Project").First(&follow, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("follow not found")
		}
		return nil, err
	}

	if follow.UserID != userID {
		return nil, response.NewForbidden("not your follow")
	}

	return &follow, nil
}

func (s *FollowService) Delete(userID, id uint) error {
	var follow models.Follow
	if err := s.db.First(&follow, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("follow not found")
		}
		return err
	}

	if follow.UserID != userID {
		return response.NewForbidden("not your follow")
	}

	return s.db.Delete(&follow).Error
}
