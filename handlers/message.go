package handlers

import (
	"errors"
	"net/http"

	messagesvc "hivewellness/services/message"
	"hivewellness/utils"

	"github.com/gin-gonic/gin"
)

// MessageHandler exposes the client<->therapist messaging endpoints.
type MessageHandler struct {
	Service messagesvc.MessageService
}

func NewMessageHandler(svc messagesvc.MessageService) *MessageHandler {
	return &MessageHandler{Service: svc}
}

func (h *MessageHandler) Send(c *gin.Context) {
	var input struct {
		ClientID    string `json:"clientId" binding:"required"`
		TherapistID string `json:"therapistId" binding:"required"`
		Body        string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	m, err := h.Service.Send(c.Request.Context(), input.ClientID, input.TherapistID, c.GetString("role"), input.Body)
	if err != nil {
		if errors.Is(err, messagesvc.ErrUnknownParticipant) || errors.Is(err, messagesvc.ErrEmptyBody) {
			utils.JSONError(c, http.StatusBadRequest, "message rejected", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to send message", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": m})
}

func (h *MessageHandler) Thread(c *gin.Context) {
	msgs, err := h.Service.Thread(c.Request.Context(), c.Param("clientId"), c.Param("therapistId"), c.GetString("role"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch thread", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
