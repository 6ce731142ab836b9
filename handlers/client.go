package handlers

import (
	"net/http"

	"hivewellness/models"
	clientsvc "hivewellness/services/client"
	"hivewellness/utils"

	"github.com/gin-gonic/gin"
)

// ClientHandler exposes client account management.
type ClientHandler struct {
	Service clientsvc.ClientService
}

func NewClientHandler(svc clientsvc.ClientService) *ClientHandler {
	return &ClientHandler{Service: svc}
}

func (h *ClientHandler) Register(c *gin.Context) {
	var reg models.ClientRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	cl, token, err := h.Service.Register(c.Request.Context(), reg)
	if err != nil {
		if clientsvc.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "registration failed", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": cl, "token": token})
}

func (h *ClientHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	cl, token, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if clientsvc.IsValidation(err) {
			utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "authentication failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": cl, "token": token})
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	cl, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch client", "")
		return
	}
	if cl == nil {
		utils.JSONError(c, http.StatusNotFound, "client not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": cl})
}

func (h *ClientHandler) Update(c *gin.Context) {
	var cl models.Client
	if err := c.ShouldBindJSON(&cl); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	cl.ID = c.Param("id")

	updated, err := h.Service.Update(c.Request.Context(), cl)
	if err != nil {
		if clientsvc.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "update failed", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "update failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": updated})
}

// UpdateFCMToken registers the device token used for session reminders.
func (h *ClientHandler) UpdateFCMToken(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Service.UpdateFCMToken(c.Request.Context(), c.Param("id"), input.Token); err != nil {
		if clientsvc.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "update failed", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "update failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
