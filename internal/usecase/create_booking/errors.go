package create_booking

import "errors"

var (
	// ErrInvalidRange возвращается, когда запрошенный интервал некорректен
	// (начало не раньше конца). Проверяется до любого обращения к хранилищу
	ErrInvalidRange = errors.New("create_booking: start must precede end")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomNotBookable возвращается, когда номер выведен из бронирования
	// (maintenance или inactive)
	ErrRoomNotBookable = errors.New("create_booking: room is not bookable")

	// ErrBookingConflict возвращается, когда на номер уже существует
	// активное бронирование, пересекающееся с запрошенным интервалом
	ErrBookingConflict = errors.New("create_booking: room is already booked for this period")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
