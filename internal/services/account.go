package services

import (
	"errors"
	"strings"

	"github.com/campushq/teambuilder/internal/models"
	"github.com/campushq/teambuilder/pkg/response"
	"gorm.io/gorm"
)

const maxProfileRoles = 3

type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

type AccountListRequest struct {
	Search string `form:"search"`
}

type UpdateProfileRequest struct {
	Programme *string   `json:"programme" binding:"omitempty,max=150"`
	About     *string   `json:"about" binding:"omitempty,max=1000"`
	Roles     *[]string `json:"roles"`
}

// List returns all active accounts with their profiles. The search
// parameter matches a substring of the profile's role list.
func (s *AccountService) List(req *AccountListRequest) ([]models.User, error) {
	query := s.db.Model(&models.User{}).
		Preload("Profile").
		Where("is_active = ?", true)

	if req.Search != "" {
		query = query.
			Joins("JOIN profiles ON profiles.user_id = users.id").
			Where("LOWER(profiles.roles) LIKE ?", "%"+strings.ToLower(req.Search)+"%")
	}

	var users []models.User
	if err := query.Order("users.id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *AccountService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Profile").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("account not found")
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the profile fields of an account. Users may only
// edit their own profile; nothing outside the profile is mutable here.
func (s *AccountService) UpdateProfile(actorID, id uint, req *UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Profile").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("account not found")
		}
		return nil, err
	}

	if actorID != id {
		return nil, response.NewForbidden("you may only edit your own profile")
	}

	if req.Roles != nil && len(*req.Roles) > maxProfileRoles {
		return nil, response.NewBadRequest("at most 3 roles")
	}

	updates := map[string]interface{}{}
	if req.Programme != nil {
		updates["programme"] = *req.Programme
	}
	if req.About != nil {
		updates["about"] = *req.About
	}
	if req.Roles != nil {
		updates["roles"] = models.StringList(*req.Roles)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Profile{}).
			Where("user_id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.Get(id)
}
