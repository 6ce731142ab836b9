package message

import (
	"context"
	"errors"
	"strings"
	"time"

	clientRepo "hivewellness/database/repository/client"
	messageRepo "hivewellness/database/repository/message"
	therapistRepo "hivewellness/database/repository/therapist"
	"hivewellness/models"
	"hivewellness/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUnknownParticipant = errors.New("unknown message participant")
var ErrEmptyBody = errors.New("message body is empty")

// MessageService is the client<->therapist messaging surface.
type MessageService interface {
	Send(ctx context.Context, clientID, therapistID, senderRole, body string) (*models.Message, error)
	Thread(ctx context.Context, clientID, therapistID, readerRole string) ([]models.Message, error)
}

// DefaultMessageService stores messages in the shared data store; delivery is
// pull-based through the portals.
type DefaultMessageService struct {
	Repo       messageRepo.MessageRepository
	Clients    clientRepo.ClientRepository
	Therapists therapistRepo.TherapistRepository
}

func (s *DefaultMessageService) Send(ctx context.Context, clientID, therapistID, senderRole, body string) (*models.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}
	if senderRole != "client" && senderRole != "therapist" {
		return nil, ErrUnknownParticipant
	}

	c, err := s.Clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	t, err := s.Therapists.GetByID(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	if c == nil || t == nil {
		return nil, ErrUnknownParticipant
	}

	m := models.Message{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		TherapistID: therapistID,
		SenderRole:  senderRole,
		Body:        body,
		SentAt:      time.Now(),
	}
	if err := s.Repo.Insert(ctx, m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *DefaultMessageService) Thread(ctx context.Context, clientID, therapistID, readerRole string) ([]models.Message, error) {
	msgs, err := s.Repo.ListThread(ctx, clientID, therapistID)
	if err != nil {
		return nil, err
	}
	if readerRole == "client" || readerRole == "therapist" {
		// Reading a thread marks the other side's messages as read. Best
		// effort: a failed receipt never hides the thread itself.
		if err := s.Repo.MarkThreadRead(ctx, clientID, therapistID, readerRole); err != nil {
			utils.GetLogger().Warn("failed to mark thread read",
				zap.String("clientID", clientID),
				zap.String("therapistID", therapistID),
				zap.Error(err))
		}
	}
	return msgs, nil
}
