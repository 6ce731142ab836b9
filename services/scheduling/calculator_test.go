package scheduling

import (
	"testing"
	"time"

	"hivewellness/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weeklyFor(wd time.Weekday, blocks ...models.TimeBlock) models.WeeklyAvailability {
	return models.WeeklyAvailability{
		TherapistID: "t-1",
		Days: []models.DayAvailability{
			{Weekday: wd, Enabled: true, Blocks: blocks},
		},
	}
}

func minutes(h, m int) int { return h*60 + m }

// 2025-06-02 is a Monday, 2025-06-07 a Saturday.
var (
	monday   = time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	saturday = time.Date(2025, 6, 7, 0, 0, 0, 0, time.Local)
	// A "now" well before the target dates so no slot reads as past.
	earlier = time.Date(2025, 5, 1, 8, 0, 0, 0, time.Local)
)

func TestComputeSlotsBoundaryDiscretization(t *testing.T) {
	weekly := weeklyFor(monday.Weekday(), models.TimeBlock{Start: minutes(9, 0), End: minutes(9, 50)})

	slots := ComputeSlots(weekly, nil, monday, 50, earlier, false)
	require.Len(t, slots, 1)
	assert.Equal(t, minutes(9, 0), slots[0].Start)
	assert.True(t, slots[0].Available)

	// 09:30+30 would run past the block end, so only 09:00 fits.
	slots = ComputeSlots(weekly, nil, monday, 30, earlier, false)
	require.Len(t, slots, 1)
	assert.Equal(t, minutes(9, 0), slots[0].Start)
}

func TestComputeSlotsMondayMorningScenario(t *testing.T) {
	weekly := weeklyFor(monday.Weekday(), models.TimeBlock{Start: minutes(9, 0), End: minutes(12, 0)})
	appts := []models.Appointment{
		{
			TherapistID: "t-1",
			Date:        monday.Format("2006-01-02"),
			Start:       minutes(10, 0),
			End:         minutes(10, 30),
			Duration:    30,
			Status:      models.AppointmentConfirmed,
		},
	}

	slots := ComputeSlots(weekly, appts, monday, 30, earlier, false)
	require.Len(t, slots, 6)

	wantStarts := []int{minutes(9, 0), minutes(9, 30), minutes(10, 0), minutes(10, 30), minutes(11, 0), minutes(11, 30)}
	for i, s := range slots {
		assert.Equal(t, wantStarts[i], s.Start)
		if s.Start == minutes(10, 0) {
			assert.False(t, s.Available)
			assert.Equal(t, models.ReasonBooked, s.ConflictReason)
		} else {
			assert.True(t, s.Available, "slot %s should be free", s.Time())
		}
	}
}

func TestComputeSlotsHalfOpenBoundary(t *testing.T) {
	weekly := weeklyFor(monday.Weekday(), models.TimeBlock{Start: minutes(14, 0), End: minutes(16, 0)})
	appts := []models.Appointment{
		{Start: minutes(14, 0), End: minutes(14, 50), Status: models.AppointmentConfirmed},
	}

	byStart := map[int]models.Slot{}
	for _, s := range ComputeSlots(weekly, appts, monday, 30, earlier, false) {
		byStart[s.Start] = s
	}

	// 14:30 lands inside the 14:00-14:50 appointment.
	assert.False(t, byStart[minutes(14, 30)].Available)
	assert.Equal(t, models.ReasonBooked, byStart[minutes(14, 30)].ConflictReason)
	// A slot starting exactly at the appointment end is free.
	assert.True(t, byStart[minutes(15, 0)].Available)
}

func TestComputeSlotsAdjacentSlotAtAppointmentEnd(t *testing.T) {
	weekly := weeklyFor(monday.Weekday(), models.TimeBlock{Start: minutes(14, 0), End: minutes(15, 40)})
	appts := []models.Appointment{
		{Start: minutes(14, 0), End: minutes(14, 50), Status: models.AppointmentConfirmed},
	}

	slots := ComputeSlots(weekly, appts, monday, 50, earlier, false)
	require.Len(t, slots, 2)
	assert.False(t, slots[0].Available)
	assert.Equal(t, minutes(14, 50), slots[1].Start)
	assert.True(t, slots[1].Available)
}

func TestComputeSlotsIgnoresNonBlockingAppointments(t *testing.T) {
	weekly := weeklyFor(monday.Weekday(), models.TimeBlock{Start: minutes(9, 0), End: minutes(10, 0)})
	appts := []models.Appointment{
		{Start: minutes(9, 0), End: minutes(9, 30), Status: models.AppointmentCancelled},
		{Start: minutes(9, 30), End: minutes(10, 0), Status: models.AppointmentCompleted},
	}

	for _, s := range ComputeSlots(weekly, appts, monday, 30, earlier, false) {
		assert.True(t, s.Available)
	}
}

func TestComputeSlotsPendingBlocks(t *testing.T) {
	weekly := weeklyFor(monday.Weekday(), models.TimeBlock{Start: minutes(9, 0), End: minutes(10, 0)})
	appts := []models.Appointment{
		{Start: minutes(9, 0), End: minutes(9, 30), Status: models.AppointmentPending},
	}

	slots := ComputeSlots(weekly, appts, monday, 30, earlier, false)
	require.Len(t, slots, 2)
	assert.False(t, slots[0].Available)
	assert.True(t, slots[1].Available)
}

func TestComputeSlotsPastSameDay(t *testing.T) {
	weekly := weeklyFor(monday.Weekday(), models.TimeBlock{Start: minutes(9, 0), End: minutes(12, 0)})
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)

	byStart := map[int]models.Slot{}
	for _, s := range ComputeSlots(weekly, nil, monday, 50, now, false) {
		byStart[s.Start] = s
	}

	assert.Equal(t, models.ReasonPast, byStart[minutes(9, 0)].ConflictReason)
	assert.Equal(t, models.ReasonPast, byStart[minutes(9, 50)].ConflictReason)
	assert.True(t, byStart[minutes(10, 40)].Available)
}

func TestComputeSlotsWeekdayOnlyPolicy(t *testing.T) {
	weekly := weeklyFor(saturday.Weekday(), models.TimeBlock{Start: minutes(9, 0), End: minutes(11, 0)})

	slots := ComputeSlots(weekly, nil, saturday, 50, earlier, true)
	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.False(t, s.Available)
		assert.Equal(t, models.ReasonWeekendOnly, s.ConflictReason)
	}

	// Same template without the policy flag books normally.
	for _, s := range ComputeSlots(weekly, nil, saturday, 50, earlier, false) {
		assert.True(t, s.Available)
	}
}

func TestComputeSlotsNoAvailability(t *testing.T) {
	// No entry for the target weekday.
	weekly := weeklyFor(time.Tuesday, models.TimeBlock{Start: minutes(9, 0), End: minutes(12, 0)})
	assert.Empty(t, ComputeSlots(weekly, nil, monday, 50, earlier, false))

	// Disabled day.
	weekly = models.WeeklyAvailability{Days: []models.DayAvailability{
		{Weekday: monday.Weekday(), Enabled: false, Blocks: []models.TimeBlock{{Start: 540, End: 720}}},
	}}
	assert.Empty(t, ComputeSlots(weekly, nil, monday, 50, earlier, false))

	// Non-positive duration.
	assert.Empty(t, ComputeSlots(weeklyFor(monday.Weekday()), nil, monday, 0, earlier, false))
}

func TestComputeSlotsOrderedAcrossBlocks(t *testing.T) {
	weekly := weeklyFor(monday.Weekday(),
		models.TimeBlock{Start: minutes(14, 0), End: minutes(15, 0)},
		models.TimeBlock{Start: minutes(9, 0), End: minutes(10, 0)},
	)

	slots := ComputeSlots(weekly, nil, monday, 30, earlier, false)
	require.Len(t, slots, 4)
	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1].Start, slots[i].Start)
	}
}

func TestComputeSlotsIdempotentRead(t *testing.T) {
	weekly := weeklyFor(monday.Weekday(), models.TimeBlock{Start: minutes(9, 0), End: minutes(12, 0)})
	appts := []models.Appointment{
		{Start: minutes(10, 0), End: minutes(10, 50), Status: models.AppointmentConfirmed},
	}

	first := ComputeSlots(weekly, appts, monday, 50, earlier, false)
	second := ComputeSlots(weekly, appts, monday, 50, earlier, false)
	assert.Equal(t, first, second)
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("14:30")
	require.NoError(t, err)
	assert.Equal(t, minutes(14, 30), got)

	got, err = ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, minutes(9, 5), got)

	for _, bad := range []string{"25:00", "12:60", "noon", "", "10:30pm", "10:30:00", "10:30 "} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}
