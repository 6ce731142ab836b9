package models

import "time"

// Therapist represents a practitioner account on the platform.
type Therapist struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	PasswordHash   string    `bson:"password_hash" json:"-"`
	Specialisms    []string  `bson:"specialisms,omitempty" json:"specialisms,omitempty"`
	Bio            string    `bson:"bio,omitempty" json:"bio,omitempty"`
	SessionRate    float64   `bson:"session_rate" json:"sessionRate"` // per session; zero means free consultations
	Currency       string    `bson:"currency,omitempty" json:"currency,omitempty"`
	FCMToken       string    `bson:"fcm_token,omitempty" json:"-"`
	Active         bool      `bson:"active" json:"active"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// TherapistRegistration is the payload for creating a therapist account.
type TherapistRegistration struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=8"`
	Specialisms []string `json:"specialisms"`
	SessionRate float64  `json:"sessionRate"`
	Currency    string   `json:"currency"`
}
