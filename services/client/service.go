package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	clientRepo "hivewellness/database/repository/client"
	"hivewellness/models"
	"hivewellness/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ValidationError signals a malformed registration or update.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ClientService manages client accounts.
type ClientService interface {
	Register(ctx context.Context, reg models.ClientRegistration) (*models.Client, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.Client, string, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
	Update(ctx context.Context, c models.Client) (*models.Client, error)
	UpdateFCMToken(ctx context.Context, clientID, token string) error
}

// DefaultClientService is the production implementation.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}

func (s *DefaultClientService) Register(ctx context.Context, reg models.ClientRegistration) (*models.Client, string, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", &ValidationError{Message: "an account with this email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	c := models.Client{
		ID:           uuid.New().String(),
		Name:         reg.Name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        reg.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(c.ID, "client", 24*time.Hour)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	utils.GetLogger().Info("client registered", zap.String("clientID", c.ID))
	return &c, token, nil
}

func (s *DefaultClientService) Authenticate(ctx context.Context, email, password string) (*models.Client, string, error) {
	c, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", err
	}
	if c == nil || bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return nil, "", &ValidationError{Message: "invalid email or password"}
	}

	token, err := utils.GenerateToken(c.ID, "client", 24*time.Hour)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return c, token, nil
}

func (s *DefaultClientService) GetByID(ctx context.Context, id string) (*models.Client, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultClientService) Update(ctx context.Context, c models.Client) (*models.Client, error) {
	existing, err := s.Repo.GetByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &ValidationError{Message: "unknown client"}
	}

	c.Email = existing.Email
	c.PasswordHash = existing.PasswordHash
	c.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *DefaultClientService) UpdateFCMToken(ctx context.Context, clientID, token string) error {
	c, err := s.Repo.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if c == nil {
		return &ValidationError{Message: "unknown client"}
	}
	c.FCMToken = token
	return s.Repo.Update(ctx, *c)
}
