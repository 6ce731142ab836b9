package handlers

// HandlerBundle groups the handler sets wired in main and consumed by the
// routes package.
type HandlerBundle struct {
	Booking   *BookingHandler
	Therapist *TherapistHandler
	Client    *ClientHandler
	Message   *MessageHandler
}
