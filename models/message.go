package models

import "time"

// Message is one client<->therapist chat message.
type Message struct {
	ID          string    `bson:"id" json:"id"`
	ClientID    string    `bson:"client_id" json:"clientId"`
	TherapistID string    `bson:"therapist_id" json:"therapistId"`
	SenderRole  string    `bson:"sender_role" json:"senderRole"` // "client" or "therapist"
	Body        string    `bson:"body" json:"body"`
	SentAt      time.Time `bson:"sent_at" json:"sentAt"`
	Read        bool      `bson:"read" json:"read"`
}
