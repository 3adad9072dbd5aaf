package handlers

import (
	"strconv"

	"github.com/campushq/teambuilder/internal/middleware"
	"github.com/campushq/teambuilder/internal/services"
	"github.com/campushq/teambuilder/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FollowHandler struct {
	followService *services.FollowService
}

func NewFollowHandler(db *gorm.DB) *FollowHandler {
	return &FollowHandler{
		followService: services.NewFollowService(db),
	}
}

// List returns the caller's follows
// GET /api/v1/follows
func (h *FollowHandler) List(c *gin.Context) {
	follows, err := h.followService.List(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, follows)
}

// Create follows a project
// POST /api/v1/follows
func (h *FollowHandler) Create(c *gin.Context) {
	var req services.CreateFollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	follow, err := h.followService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, follow)
}

// GetByID returns one of the caller's follows
// GET /api/v1/follows/:id
func (h *FollowHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid follow id")
		return
	}

	follow, err := h.followService.Get(middleware.GetUserID(c), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, follow)
}

// Delete unfollows a project
// DELETE /api/v1/follows/:id
func (h *FollowHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid follow id")
		return
	}

	if err := h.followService.Delete(middleware.GetUserID(c), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c)
}
