package domain

// Business validation constants
const (
	MaxCustomerNameLength = 200
	MaxNotesLength        = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, участвующих в проверке конфликтов.
// Проверка пересечений параметризуется этим списком, а не захардкоженным
// исключением отменённых бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
}

// CancelledStatuses список статусов, исключаемых из проверки конфликтов
var CancelledStatuses = []BookingStatus{
	StatusCancelled,
}

// AllBookingStatuses закрытый перечень допустимых статусов бронирования
var AllBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCheckedIn,
	StatusCheckedOut,
}

// AllRoomStatuses закрытый перечень допустимых статусов номера
var AllRoomStatuses = []RoomStatus{
	RoomStatusActive,
	RoomStatusMaintenance,
	RoomStatusInactive,
}

// IsValidBookingStatus проверяет, что статус входит в закрытый перечень
func IsValidBookingStatus(s BookingStatus) bool {
	for _, known := range AllBookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsValidRoomStatus проверяет, что статус входит в закрытый перечень
func IsValidRoomStatus(s RoomStatus) bool {
	for _, known := range AllRoomStatuses {
		if s == known {
			return true
		}
	}
	return false
}
