package models

// ReminderPayload is the asynq task payload for session reminders.
type ReminderPayload struct {
	ReminderID    string `json:"reminderId"`
	Target        string `json:"target"` // "client" or "therapist"
	ID            string `json:"id"`     // account id of the target
	AppointmentID string `json:"appointmentId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
