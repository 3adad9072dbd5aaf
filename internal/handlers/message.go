package handlers

import (
	"strconv"

	"github.com/campushq/teambuilder/internal/middleware"
	"github.com/campushq/teambuilder/internal/services"
	"github.com/campushq/teambuilder/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(db *gorm.DB) *MessageHandler {
	return &MessageHandler{
		messageService: services.NewMessageService(db),
	}
}

func projectParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return 0, false
	}
	return uint(id), true
}

// ListPrivate returns a project's private messages; team only
// GET /api/v1/projects/:id/private-messages
func (h *MessageHandler) ListPrivate(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	messages, err := h.messageService.ListPrivate(middleware.GetUserID(c), projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, messages)
}

// GetPrivate returns a single private message; team only
// GET /api/v1/projects/:id/private-messages/:mid
func (h *MessageHandler) GetPrivate(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	mid, err := strconv.ParseUint(c.Param("mid"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	message, err := h.messageService.GetPrivate(middleware.GetUserID(c), projectID, uint(mid))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, message)
}

// CreatePrivate posts a private message; team only
// POST /api/v1/projects/:id/private-messages
func (h *MessageHandler) CreatePrivate(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	var req services.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	message, err := h.messageService.CreatePrivate(middleware.GetUserID(c), projectID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, message)
}

// ListPublic returns a project's public messages
// GET /api/v1/projects/:id/public-messages
func (h *MessageHandler) ListPublic(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	messages, err := h.messageService.ListPublic(projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, messages)
}

// GetPublic returns a single public message
// GET /api/v1/projects/:id/public-messages/:mid
func (h *MessageHandler) GetPublic(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	mid, err := strconv.ParseUint(c.Param("mid"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	message, err := h.messageService.GetPublic(projectID, uint(mid))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, message)
}

// CreatePublic posts a public message
// POST /api/v1/projects/:id/public-messages
func (h *MessageHandler) CreatePublic(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	var req services.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	message, err := h.messageService.CreatePublic(middleware.GetUserID(c), projectID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, message)
}
