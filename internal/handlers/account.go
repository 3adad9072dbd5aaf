package handlers

import (
	"strconv"

	"github.com/campushq/teambuilder/internal/middleware"
	"github.com/campushq/teambuilder/internal/services"
	"github.com/campushq/teambuilder/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AccountHandler struct {
	accountService *services.AccountService
}

func NewAccountHandler(db *gorm.DB) *AccountHandler {
	return &AccountHandler{
		accountService: services.NewAccountService(db),
	}
}

// List returns accounts, optionally filtered by profile role substring
// GET /api/v1/accounts
func (h *AccountHandler) List(c *gin.Context) {
	var req services.AccountListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	users, err := h.accountService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, users)
}

// GetByID returns a single account
// GET /api/v1/accounts/:id
func (h *AccountHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid account id")
		return
	}

	user, err := h.accountService.Get(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}

// Update edits the profile of an account; own profile only
// PATCH /api/v1/accounts/:id
func (h *AccountHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid account id")
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.accountService.UpdateProfile(middleware.GetUserID(c), uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}
