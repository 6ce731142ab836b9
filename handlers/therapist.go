package handlers

import (
	"net/http"

	"hivewellness/models"
	"hivewellness/services/therapist"
	"hivewellness/utils"

	"github.com/gin-gonic/gin"
)

// TherapistHandler exposes therapist account and availability management.
type TherapistHandler struct {
	Service therapist.TherapistService
}

func NewTherapistHandler(svc therapist.TherapistService) *TherapistHandler {
	return &TherapistHandler{Service: svc}
}

func (h *TherapistHandler) Register(c *gin.Context) {
	var reg models.TherapistRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	t, token, err := h.Service.Register(c.Request.Context(), reg)
	if err != nil {
		if therapist.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "registration failed", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"therapist": t, "token": token})
}

func (h *TherapistHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	t, token, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if therapist.IsValidation(err) {
			utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "authentication failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"therapist": t, "token": token})
}

func (h *TherapistHandler) GetByID(c *gin.Context) {
	t, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch therapist", "")
		return
	}
	if t == nil {
		utils.JSONError(c, http.StatusNotFound, "therapist not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"therapist": t})
}

func (h *TherapistHandler) Update(c *gin.Context) {
	var t models.Therapist
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	t.ID = c.Param("id")

	updated, err := h.Service.Update(c.Request.Context(), t)
	if err != nil {
		if therapist.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "update failed", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "update failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"therapist": updated})
}

// SetAvailability handles PUT /api/therapists/availability/:id with the full
// weekly template. Overlapping blocks within a day are rejected.
func (h *TherapistHandler) SetAvailability(c *gin.Context) {
	var input struct {
		Days []models.DayAvailability `json:"days" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.SetWeeklyAvailability(c.Request.Context(), c.Param("id"), input.Days); err != nil {
		if therapist.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "invalid availability", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to save availability", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (h *TherapistHandler) GetAvailability(c *gin.Context) {
	weekly, err := h.Service.GetWeeklyAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch availability", "")
		return
	}
	if weekly == nil {
		c.JSON(http.StatusOK, gin.H{"therapistId": c.Param("id"), "days": []models.DayAvailability{}})
		return
	}
	c.JSON(http.StatusOK, weekly)
}
