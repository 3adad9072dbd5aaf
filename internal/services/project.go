package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/campushq/teambuilder/internal/models"
	"github.com/campushq/teambuilder/pkg/response"
	"gorm.io/gorm"
)

const maxDesiredRoles = 10

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type ProjectListRequest struct {
	Search   string `form:"search"`
	Relation string `form:"relation"` // active, owned, followed
	Order    string `form:"order"`    // ascending, descending, popularity
	Limit    string `form:"limit"`
}

type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required,max=150"`
	Description  string   `json:"description" binding:"max=3000"`
	Category     string   `json:"category" binding:"required"`
	OwnerRole    string   `json:"owner_role" binding:"max=40"`
	DesiredRoles []string `json:"desired_roles"`
}

type UpdateProjectRequest struct {
	Title        *string   `json:"title" binding:"omitempty,max=150"`
	Description  *string   `json:"description" binding:"omitempty,max=3000"`
	Category     *string   `json:"category"`
	OwnerRole    *string   `json:"owner_role" binding:"omitempty,max=40"`
	DesiredRoles *[]string `json:"desired_roles"`
}

// List returns projects filtered and ordered per query parameters.
// The relation filter is evaluated against the calling user.
func (s *ProjectService) List(userID uint, req *ProjectListRequest) ([]models.Project, error) {
	query := s.db.Model(&models.Project{}).
		Preload("Owner").
		Preload("TeamMembers").
		Preload("TeamMembers.User")

	if req.Search != "" {
		// desired_roles is stored as a JSON array in a text column, so a
		// lowercase substring match covers role search well enough.
		query = query.Where("LOWER(desired_roles) LIKE ?", "%"+strings.ToLower(req.Search)+"%")
	}

	switch req.Relation {
	case "active":
		query = query.Where(
			"owner_id = ? OR id IN (SELECT project_id FROM memberships WHERE user_id = ? AND deleted_at IS NULL)",
			userID, userID)
	case "owned":
		query = query.Where("owner_id = ?", userID)
	case "followed":
		query = query.Where(
			"id IN (SELECT project_id FROM follows WHERE user_id = ? AND deleted_at IS NULL)", userID)
	}

	switch req.Order {
	case "ascending":
		query = query.Order("created_at ASC")
	case "popularity":
		query = query.Order(
			"(SELECT COUNT(*) FROM follows WHERE follows.project_id = projects.id AND follows.deleted_at IS NULL) DESC")
	default:
		query = query.Order("created_at DESC")
	}

	// Non-numeric or non-positive limits are ignored
	if req.Limit != "" {
		if n, err := strconv.Atoi(req.Limit); err == nil && n > 0 {
			query = query.Limit(n)
		}
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) Create(ownerID uint, req *CreateProjectRequest) (*models.Project, error) {
	if !models.ValidCategory(req.Category) {
		return nil, response.NewBadRequest("invalid category code")
	}
	if len(req.DesiredRoles) > maxDesiredRoles {
		return nil, response.NewBadRequest("at most 10 desired roles")
	}

	project := models.Project{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		OwnerID:      ownerID,
		OwnerRole:    req.OwnerRole,
		DesiredRoles: req.DesiredRoles,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}

	return s.Get(project.ID)
}

func (s *ProjectService) Get(id uint) (*models.Project, error) {
	var project models.Project
	err := s.db.
		Preload("Owner").
		Preload("TeamMembers").
		Preload("TeamMembers.User").
		First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	return &project, nil
}

// Update modifies a project. Only the owner may update, and ownership
// itself is never reassigned.
func (s *ProjectService) Update(actorID, id uint, req *UpdateProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}

	if !project.IsOwnedBy(actorID) {
		return nil, response.NewForbidden("only the project owner may update it")
	}

	if req.Category != nil && !models.ValidCategory(*req.Category) {
		return nil, response.NewBadRequest("invalid category code")
	}
	if req.DesiredRoles != nil && len(*req.DesiredRoles) > maxDesiredRoles {
		return nil, response.NewBadRequest("at most 10 desired roles")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.OwnerRole != nil {
		updates["owner_role"] = *req.OwnerRole
	}
	if req.DesiredRoles != nil {
		updates["desired_roles"] = models.StringList(*req.DesiredRoles)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&project).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.Get(id)
}

func (s *ProjectService) Delete(actorID, id uint) error {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("project not found")
		}
		return err
	}

	if !project.IsOwnedBy(actorID) {
		return response.NewForbidden("only the project owner may delete it")
	}

	return s.db.Delete(&project).Error
}
