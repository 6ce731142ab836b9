package handlers

import (
	"net/http"
	"strconv"

	"hivewellness/models"
	"hivewellness/services/scheduling"
	"hivewellness/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the availability query and the booking write path.
type BookingHandler struct {
	Scheduler scheduling.Service
	Logger    *zap.Logger
}

func NewBookingHandler(scheduler scheduling.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Scheduler: scheduler, Logger: logger}
}

// GetAvailability handles GET /api/availability?therapistId=&date=&duration=.
// The response includes booked slots flagged unavailable so the portal can
// grey them out instead of hiding them.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	therapistID := c.Query("therapistId")
	date := c.Query("date")
	duration := 50
	if d := c.Query("duration"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "duration must be an integer")
			return
		}
		duration = parsed
	}

	slots, err := h.Scheduler.DaySlots(c.Request.Context(), therapistID, date, duration)
	if err != nil {
		if scheduling.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		h.Logger.Error("availability query failed", zap.String("therapistID", therapistID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", "")
		return
	}

	out := make([]models.SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{
		"therapistId": therapistID,
		"date":        date,
		"duration":    duration,
		"slots":       out,
	})
}

type bookRequest struct {
	TherapistID     string `json:"therapistId" binding:"required"`
	ClientID        string `json:"clientId" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
	PaymentMethodID string `json:"paymentMethodId"`
}

// CreateBooking handles POST /api/bookings. Conflicts come back as 409 with a
// reason the portal shows verbatim; the expected recovery is to re-fetch
// availability, not to retry the same slot.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input bookRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	start, err := scheduling.ParseClock(input.Time)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Scheduler.Reserve(c.Request.Context(), scheduling.ReserveRequest{
		TherapistID:     input.TherapistID,
		ClientID:        input.ClientID,
		Date:            input.Date,
		Start:           start,
		Duration:        input.DurationMinutes,
		PaymentMethodID: input.PaymentMethodID,
	})
	if err != nil {
		switch {
		case scheduling.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"conflictReason": err.Error()})
		case scheduling.IsValidation(err):
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		default:
			h.Logger.Error("reservation failed", zap.String("therapistID", input.TherapistID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "booking failed", "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// CancelBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	apptID := c.Param("id")
	requesterID := c.GetString("accountID")

	if err := h.Scheduler.Cancel(c.Request.Context(), apptID, requesterID); err != nil {
		if scheduling.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "cannot cancel", err.Error())
			return
		}
		h.Logger.Error("cancellation failed", zap.String("appointmentID", apptID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "cancellation failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.AppointmentCancelled})
}

// ListClientBookings handles GET /api/bookings/client/:id.
func (h *BookingHandler) ListClientBookings(c *gin.Context) {
	appts, err := h.Scheduler.ListForClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.Error("listing client bookings failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListTherapistBookings handles GET /api/bookings/therapist/:id.
func (h *BookingHandler) ListTherapistBookings(c *gin.Context) {
	appts, err := h.Scheduler.ListForTherapist(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.Error("listing therapist bookings failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
