package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultMaxPartySize        = 8
	DefaultAdvanceBookingDays  = 30
)

// Business validation constants
const (
	MinPartySize           = 1
	MaxPartySizeLimit      = 50
	MinAdvanceBookingDays  = 1
	MaxAdvanceBookingDays  = 365
	MaxNotesLength         = 500
	MaxGuestNameLength     = 200
	MaxClosureNameLength   = 200
	MaxClosureReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllowedSlotDurations допустимые длительности слота в минутах
var AllowedSlotDurations = []int{15, 30, 60}

// IsAllowedSlotDuration проверяет, что длительность слота входит в допустимый набор
func IsAllowedSlotDuration(minutes int) bool {
	for _, d := range AllowedSlotDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// InactiveStatuses статусы, при которых бронь не занимает место в слоте
// Completed и no_show места не освобождают: гость слот фактически занимал
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}

// ActiveStatuses статусы броней, занимающих место в слоте
var ActiveStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusCompleted,
	StatusNoShow,
}
