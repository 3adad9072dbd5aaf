package handlers

import (
	"strconv"

	"github.com/campushq/teambuilder/internal/middleware"
	"github.com/campushq/teambuilder/internal/services"
	"github.com/campushq/teambuilder/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MembershipHandler struct {
	membershipService *services.MembershipService
}

func NewMembershipHandler(db *gorm.DB) *MembershipHandler {
	return &MembershipHandler{
		membershipService: services.NewMembershipService(db),
	}
}

// List returns the caller's memberships
// GET /api/v1/memberships
func (h *MembershipHandler) List(c *gin.Context) {
	memberships, err := h.membershipService.List(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, memberships)
}

// GetByID returns a membership
// GET /api/v1/memberships/:id
func (h *MembershipHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid membership id")
		return
	}

	membership, err := h.membershipService.Get(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, membership)
}

// Update changes a member's role; project owner only
// PUT /api/v1/memberships/:id
func (h *MembershipHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid membership id")
		return
	}

	var req services.UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	membership, err := h.membershipService.UpdateRole(middleware.GetUserID(c), uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, membership)
}

// Delete removes a membership; project owner or the member themself
// DELETE /api/v1/memberships/:id
func (h *MembershipHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid membership id")
		return
	}

	if err := h.membershipService.Delete(middleware.GetUserID(c), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c)
}

// Create adds a membership directly, bypassing the request flow
// POST /api/v1/memberships (admin only)
func (h *MembershipHandler) Create(c *gin.Context) {
	var req services.CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	membership, err := h.membershipService.AdminCreate(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, membership)
}
