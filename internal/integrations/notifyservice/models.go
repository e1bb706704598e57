package notifyservice

// CancellationNotification запрос на отправку уведомления об отмене брони
type CancellationNotification struct {
	ReservationID int64   `json:"reservation_id"`
	GuestName     string  `json:"guest_name"`
	GuestEmail    string  `json:"guest_email"`
	GuestPhone    *string `json:"guest_phone,omitempty"`
	Date          string  `json:"date"`       // YYYY-MM-DD
	StartTime     string  `json:"start_time"` // HH:MM
	PartySize     int     `json:"party_size"`
	Reason        string  `json:"reason"`
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
