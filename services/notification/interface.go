package notification

import (
	"context"
	"fmt"

	clientRepo "hivewellness/database/repository/client"
	therapistRepo "hivewellness/database/repository/therapist"
	"hivewellness/utils"

	"firebase.google.com/go/v4/messaging"
)

// Service defines methods for sending FCM pushes. Delivery failures are the
// caller's problem to log, never to roll back a booking over.
type Service interface {
	SendClientPush(ctx context.Context, clientID, title, body string, data map[string]string) error
	SendTherapistPush(ctx context.Context, therapistID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Clients    clientRepo.ClientRepository
	Therapists therapistRepo.TherapistRepository
}

// SendClientPush looks up a client's FCM token and sends a push.
func (s *DefaultNotificationService) SendClientPush(
	ctx context.Context,
	clientID, title, body string,
	data map[string]string,
) error {
	c, err := s.Clients.GetByID(ctx, clientID)
	if err != nil || c == nil {
		return fmt.Errorf("SendClientPush: could not find client %s: %w", clientID, err)
	}
	if c.FCMToken == "" {
		return fmt.Errorf("SendClientPush: client %s has no FCM token", clientID)
	}
	return send(ctx, c.FCMToken, title, body, data)
}

// SendTherapistPush looks up a therapist's FCM token and sends a push.
func (s *DefaultNotificationService) SendTherapistPush(
	ctx context.Context,
	therapistID, title, body string,
	data map[string]string,
) error {
	t, err := s.Therapists.GetByID(ctx, therapistID)
	if err != nil || t == nil {
		return fmt.Errorf("SendTherapistPush: could not find therapist %s: %w", therapistID, err)
	}
	if t.FCMToken == "" {
		return fmt.Errorf("SendTherapistPush: therapist %s has no FCM token", therapistID)
	}
	return send(ctx, t.FCMToken, title, body, data)
}

func send(ctx context.Context, token, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("fcm send failed: %w", err)
	}
	return nil
}
