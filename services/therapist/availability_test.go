package therapist

import (
	"context"
	"testing"
	"time"

	"hivewellness/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTherapistStore struct {
	m map[string]models.Therapist
}

func (s *memTherapistStore) Create(ctx context.Context, t models.Therapist) error {
	s.m[t.ID] = t
	return nil
}

func (s *memTherapistStore) GetByID(ctx context.Context, id string) (*models.Therapist, error) {
	t, ok := s.m[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *memTherapistStore) GetByEmail(ctx context.Context, email string) (*models.Therapist, error) {
	for _, t := range s.m {
		if t.Email == email {
			return &t, nil
		}
	}
	return nil, nil
}

func (s *memTherapistStore) Update(ctx context.Context, t models.Therapist) error {
	s.m[t.ID] = t
	return nil
}

func (s *memTherapistStore) ListActive(ctx context.Context) ([]models.Therapist, error) {
	var out []models.Therapist
	for _, t := range s.m {
		if t.Active {
			out = append(out, t)
		}
	}
	return out, nil
}

type memAvailabilityStore struct {
	m map[string]models.WeeklyAvailability
}

func (s *memAvailabilityStore) Get(ctx context.Context, therapistID string) (*models.WeeklyAvailability, error) {
	w, ok := s.m[therapistID]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (s *memAvailabilityStore) Upsert(ctx context.Context, weekly models.WeeklyAvailability) error {
	s.m[weekly.TherapistID] = weekly
	return nil
}

func (s *memAvailabilityStore) Delete(ctx context.Context, therapistID string) error {
	delete(s.m, therapistID)
	return nil
}

func newTestService() (*DefaultTherapistService, *memAvailabilityStore) {
	avail := &memAvailabilityStore{m: map[string]models.WeeklyAvailability{}}
	svc := &DefaultTherapistService{
		Repo: &memTherapistStore{m: map[string]models.Therapist{
			"t-1": {ID: "t-1", Name: "Dr. Ama Mensah", Email: "ama@example.com", Active: true},
		}},
		Avail: avail,
	}
	return svc, avail
}

func block(start, end int) models.TimeBlock {
	return models.TimeBlock{Start: start, End: end}
}

func TestSetWeeklyAvailabilityStoresTemplate(t *testing.T) {
	svc, avail := newTestService()

	days := []models.DayAvailability{
		{Weekday: time.Monday, Enabled: true, Blocks: []models.TimeBlock{block(540, 720), block(780, 1020)}},
		{Weekday: time.Wednesday, Enabled: true, Blocks: []models.TimeBlock{block(540, 1020)}},
	}
	require.NoError(t, svc.SetWeeklyAvailability(context.Background(), "t-1", days))

	stored, err := svc.GetWeeklyAvailability(context.Background(), "t-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "t-1", stored.TherapistID)
	assert.Len(t, stored.Days, 2)
	assert.Equal(t, []models.TimeBlock{block(540, 720), block(780, 1020)}, stored.Days[0].Blocks)
	assert.Contains(t, avail.m, "t-1")
}

func TestSetWeeklyAvailabilityUnknownTherapist(t *testing.T) {
	svc, _ := newTestService()

	err := svc.SetWeeklyAvailability(context.Background(), "nobody", []models.DayAvailability{
		{Weekday: time.Monday, Enabled: true, Blocks: []models.TimeBlock{block(540, 720)}},
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestSetWeeklyAvailabilityRejectsBadTemplates(t *testing.T) {
	svc, _ := newTestService()

	cases := []struct {
		name string
		days []models.DayAvailability
	}{
		{
			"overlapping blocks",
			[]models.DayAvailability{
				{Weekday: time.Monday, Enabled: true, Blocks: []models.TimeBlock{block(540, 780), block(720, 900)}},
			},
		},
		{
			"inverted window",
			[]models.DayAvailability{
				{Weekday: time.Monday, Enabled: true, Blocks: []models.TimeBlock{block(720, 540)}},
			},
		},
		{
			"empty window",
			[]models.DayAvailability{
				{Weekday: time.Monday, Enabled: true, Blocks: []models.TimeBlock{block(540, 540)}},
			},
		},
		{
			"past midnight",
			[]models.DayAvailability{
				{Weekday: time.Monday, Enabled: true, Blocks: []models.TimeBlock{block(1380, 1500)}},
			},
		},
		{
			"negative start",
			[]models.DayAvailability{
				{Weekday: time.Monday, Enabled: true, Blocks: []models.TimeBlock{block(-30, 60)}},
			},
		},
		{
			"duplicate weekday",
			[]models.DayAvailability{
				{Weekday: time.Monday, Enabled: true, Blocks: []models.TimeBlock{block(540, 720)}},
				{Weekday: time.Monday, Enabled: true, Blocks: []models.TimeBlock{block(780, 900)}},
			},
		},
		{
			"weekday out of range",
			[]models.DayAvailability{
				{Weekday: time.Weekday(9), Enabled: true, Blocks: []models.TimeBlock{block(540, 720)}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.SetWeeklyAvailability(context.Background(), "t-1", tc.days)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected a validation error, got %v", err)
		})
	}
}

func TestSetWeeklyAvailabilityClearsDisabledDays(t *testing.T) {
	svc, _ := newTestService()

	days := []models.DayAvailability{
		{Weekday: time.Monday, Enabled: true, Blocks: []models.TimeBlock{block(540, 720)}},
		{Weekday: time.Saturday, Enabled: false, Blocks: []models.TimeBlock{block(540, 720)}},
	}
	require.NoError(t, svc.SetWeeklyAvailability(context.Background(), "t-1", days))

	stored, err := svc.GetWeeklyAvailability(context.Background(), "t-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	for _, d := range stored.Days {
		if d.Weekday == time.Saturday {
			assert.Empty(t, d.Blocks)
		}
	}
}

func TestSetWeeklyAvailabilityIgnoresBlocksOnDisabledDays(t *testing.T) {
	svc, _ := newTestService()

	// Overlapping blocks on a disabled day are never used, so they pass.
	days := []models.DayAvailability{
		{Weekday: time.Sunday, Enabled: false, Blocks: []models.TimeBlock{block(540, 780), block(720, 900)}},
	}
	require.NoError(t, svc.SetWeeklyAvailability(context.Background(), "t-1", days))
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _ := newTestService()

	reg := models.TherapistRegistration{
		Name:        "Dr. Priya Shah",
		Email:       "Priya@Example.com",
		Password:    "correct-horse",
		SessionRate: 80,
		Currency:    "gbp",
	}
	created, token, err := svc.Register(context.Background(), reg)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, token)
	assert.Equal(t, "priya@example.com", created.Email)
	assert.True(t, created.Active)

	// Duplicate email is rejected.
	_, _, err = svc.Register(context.Background(), reg)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	// Login round-trip, case-insensitive on the email.
	got, token, err := svc.Authenticate(context.Background(), "priya@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Authenticate(context.Background(), "priya@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
