package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hivewellness/models"
	"hivewellness/services/scheduling"
	"hivewellness/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScheduler scripts the scheduling engine responses per test.
type stubScheduler struct {
	slots      []models.Slot
	slotsErr   error
	appt       *models.Appointment
	reserveErr error
	cancelErr  error
	lastReq    scheduling.ReserveRequest
}

func (s *stubScheduler) DaySlots(ctx context.Context, therapistID, date string, durationMinutes int) ([]models.Slot, error) {
	return s.slots, s.slotsErr
}

func (s *stubScheduler) Reserve(ctx context.Context, req scheduling.ReserveRequest) (*models.Appointment, error) {
	s.lastReq = req
	return s.appt, s.reserveErr
}

func (s *stubScheduler) Cancel(ctx context.Context, appointmentID, requesterID string) error {
	return s.cancelErr
}

func (s *stubScheduler) ListForClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubScheduler) ListForTherapist(ctx context.Context, therapistID string) ([]models.Appointment, error) {
	return nil, nil
}

func newBookingRouter(stub *stubScheduler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(stub, utils.GetLogger())

	r := gin.New()
	r.GET("/api/availability", h.GetAvailability)
	r.POST("/api/bookings", func(c *gin.Context) {
		// Auth middleware normally stamps the requester identity.
		c.Set("accountID", "c-1")
		h.CreateBooking(c)
	})
	r.DELETE("/api/bookings/:id", func(c *gin.Context) {
		c.Set("accountID", "c-1")
		h.CancelBooking(c)
	})
	return r
}

func TestGetAvailabilityOK(t *testing.T) {
	stub := &stubScheduler{slots: []models.Slot{
		{Date: "2026-09-07", Start: 540, Duration: 50, Available: true},
		{Date: "2026-09-07", Start: 600, Duration: 50, Available: false, ConflictReason: models.ReasonBooked},
	}}
	r := newBookingRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?therapistId=t-1&date=2026-09-07&duration=50", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		TherapistID string                `json:"therapistId"`
		Date        string                `json:"date"`
		Duration    int                   `json:"duration"`
		Slots       []models.SlotResponse `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "t-1", body.TherapistID)
	assert.Equal(t, 50, body.Duration)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, "09:00", body.Slots[0].Time)
	assert.True(t, body.Slots[0].IsAvailable)
	assert.Equal(t, "10:00", body.Slots[1].Time)
	assert.False(t, body.Slots[1].IsAvailable)
	assert.Equal(t, models.ReasonBooked, body.Slots[1].ConflictReason)
}

func TestGetAvailabilityDefaultsDuration(t *testing.T) {
	stub := &stubScheduler{slots: []models.Slot{}}
	r := newBookingRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?therapistId=t-1&date=2026-09-07", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(50), body["duration"])
}

func TestGetAvailabilityBadInput(t *testing.T) {
	stub := &stubScheduler{slotsErr: scheduling.NewValidationError("date", "must be formatted YYYY-MM-DD")}
	r := newBookingRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?therapistId=t-1&date=garbage", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-integer duration never reaches the engine.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/availability?therapistId=t-1&date=2026-09-07&duration=soon", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func postBooking(t *testing.T, r *gin.Engine, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func validBookingPayload() map[string]any {
	return map[string]any{
		"therapistId":     "t-1",
		"clientId":        "c-1",
		"date":            "2026-09-07",
		"time":            "10:00",
		"durationMinutes": 50,
	}
}

func TestCreateBookingCreated(t *testing.T) {
	stub := &stubScheduler{appt: &models.Appointment{
		ID:          "appt-1",
		TherapistID: "t-1",
		ClientID:    "c-1",
		Date:        "2026-09-07",
		Start:       600,
		End:         650,
		Duration:    50,
		Status:      models.AppointmentConfirmed,
	}}
	r := newBookingRouter(stub)

	w := postBooking(t, r, validBookingPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	// The "HH:MM" time field arrives at the engine as minutes from midnight.
	assert.Equal(t, 600, stub.lastReq.Start)
	assert.Equal(t, 50, stub.lastReq.Duration)

	var body struct {
		Appointment models.Appointment `json:"appointment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "appt-1", body.Appointment.ID)
	assert.Equal(t, models.AppointmentConfirmed, body.Appointment.Status)
}

func TestCreateBookingConflict(t *testing.T) {
	stub := &stubScheduler{reserveErr: scheduling.NewConflictError("This time slot is no longer available")}
	r := newBookingRouter(stub)

	w := postBooking(t, r, validBookingPayload())
	require.Equal(t, http.StatusConflict, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "This time slot is no longer available", body["conflictReason"])
}

func TestCreateBookingValidation(t *testing.T) {
	stub := &stubScheduler{reserveErr: scheduling.NewValidationError("time", "requested time is outside the therapist's availability")}
	r := newBookingRouter(stub)

	w := postBooking(t, r, validBookingPayload())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingRejectsMalformedPayload(t *testing.T) {
	stub := &stubScheduler{}
	r := newBookingRouter(stub)

	// Missing required fields.
	w := postBooking(t, r, map[string]any{"therapistId": "t-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unparseable clock time.
	payload := validBookingPayload()
	payload["time"] = "ten o'clock"
	w = postBooking(t, r, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelBooking(t *testing.T) {
	stub := &stubScheduler{}
	r := newBookingRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/appt-1", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.AppointmentCancelled, body["status"])
}

func TestCancelBookingRejected(t *testing.T) {
	stub := &stubScheduler{cancelErr: scheduling.NewValidationError("status", "cannot cancel a completed appointment")}
	r := newBookingRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/appt-1", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
