package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := map[[2]string]bool{
		{AppointmentPending, AppointmentConfirmed}:   true,
		{AppointmentPending, AppointmentCancelled}:   true,
		{AppointmentConfirmed, AppointmentCompleted}: true,
		{AppointmentConfirmed, AppointmentCancelled}: true,
	}

	statuses := []string{AppointmentPending, AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]string{from, to}]
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestBlocking(t *testing.T) {
	assert.True(t, Appointment{Status: AppointmentPending}.Blocking())
	assert.True(t, Appointment{Status: AppointmentConfirmed}.Blocking())
	assert.False(t, Appointment{Status: AppointmentCancelled}.Blocking())
	assert.False(t, Appointment{Status: AppointmentCompleted}.Blocking())
}

func TestOverlapsHalfOpen(t *testing.T) {
	appt := Appointment{Start: 840, End: 890} // 14:00-14:50

	assert.True(t, appt.Overlaps(870, 920), "14:30 starts inside the appointment")
	assert.True(t, appt.Overlaps(800, 850), "an interval ending inside overlaps")
	assert.True(t, appt.Overlaps(840, 890), "identical interval overlaps")

	// Touching endpoints do not overlap.
	assert.False(t, appt.Overlaps(890, 940), "starting at the appointment end is free")
	assert.False(t, appt.Overlaps(790, 840), "ending at the appointment start is free")
}
