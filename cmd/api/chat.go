package main

import (
	"net/http"

	"skycast/internal/apperr"
	"skycast/internal/chat"

	"github.com/gin-gonic/gin"
)

// ChatInput represents the request body for a chat completion
type ChatInput struct {
	Messages []chat.Message `json:"messages"` // Conversation turns, oldest first
}

// ChatResponse represents the assistant's reply
type ChatResponse struct {
	Message chat.Message `json:"message"` // Assistant reply
}

// handleChat godoc
// @Summary Chat with the weather assistant
// @Description Forward a conversation to the language model and return the assistant's reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatInput true "Conversation turns"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/chat [post]
func (app *App) handleChat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		app.respondError(c, apperr.Validation("invalid request body: %v", err))
		return
	}

	reply, err := app.chatService.Complete(c.Request.Context(), input.Messages)
	if err != nil {
		app.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Message: reply})
}
