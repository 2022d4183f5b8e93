package handler

import (
	"net/http"
	"strings"

	"github.com/oindrieel/purulia/internal/model"
	"github.com/oindrieel/purulia/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler handles chat-related HTTP requests
type ChatHandler struct {
	router *service.Router
}

// NewChatHandler creates a new chat handler
func NewChatHandler(router *service.Router) *ChatHandler {
	return &ChatHandler{router: router}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text cannot be empty"})
		return
	}

	if req.UserID == "" {
		req.UserID = "guest"
	}

	response, err := h.router.ProcessQuery(c.Request.Context(), req.Text)
	if err != nil {
		// Uniform error envelope: failures never leak as bare 500s
		c.JSON(http.StatusOK, &model.ChatResponse{
			Type:   model.ResponseTypeError,
			Error:  err.Error(),
			UserID: req.UserID,
		})
		return
	}

	response.UserID = req.UserID
	response.RequestID = uuid.NewString()
	c.JSON(http.StatusOK, response)
}
