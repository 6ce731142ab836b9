package therapist

import (
	"context"
	"fmt"
	"strings"
	"time"

	availabilityRepo "hivewellness/database/repository/availability"
	therapistRepo "hivewellness/database/repository/therapist"
	"hivewellness/config"
	"hivewellness/models"
	"hivewellness/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TherapistService manages therapist accounts and their weekly availability.
type TherapistService interface {
	Register(ctx context.Context, reg models.TherapistRegistration) (*models.Therapist, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.Therapist, string, error)
	GetByID(ctx context.Context, id string) (*models.Therapist, error)
	Update(ctx context.Context, t models.Therapist) (*models.Therapist, error)
	SetWeeklyAvailability(ctx context.Context, therapistID string, days []models.DayAvailability) error
	GetWeeklyAvailability(ctx context.Context, therapistID string) (*models.WeeklyAvailability, error)
}

// DefaultTherapistService is the production implementation.
type DefaultTherapistService struct {
	Repo  therapistRepo.TherapistRepository
	Avail availabilityRepo.AvailabilityRepository
}

func (s *DefaultTherapistService) Register(ctx context.Context, reg models.TherapistRegistration) (*models.Therapist, string, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", NewValidationError("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	currency := reg.Currency
	if currency == "" {
		currency = config.AppConfig.DefaultCurrency
	}

	now := time.Now()
	t := models.Therapist{
		ID:           uuid.New().String(),
		Name:         reg.Name,
		Email:        email,
		PasswordHash: string(hash),
		Specialisms:  reg.Specialisms,
		SessionRate:  reg.SessionRate,
		Currency:     currency,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(t.ID, "therapist", 24*time.Hour)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	utils.GetLogger().Info("therapist registered", zap.String("therapistID", t.ID))
	return &t, token, nil
}

func (s *DefaultTherapistService) Authenticate(ctx context.Context, email, password string) (*models.Therapist, string, error) {
	t, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", err
	}
	if t == nil || bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte(password)) != nil {
		return nil, "", NewValidationError("invalid email or password")
	}

	token, err := utils.GenerateToken(t.ID, "therapist", 24*time.Hour)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return t, token, nil
}

func (s *DefaultTherapistService) GetByID(ctx context.Context, id string) (*models.Therapist, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultTherapistService) Update(ctx context.Context, t models.Therapist) (*models.Therapist, error) {
	existing, err := s.Repo.GetByID(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, NewValidationError("unknown therapist")
	}

	// Credentials never change through profile updates.
	t.Email = existing.Email
	t.PasswordHash = existing.PasswordHash
	t.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}
