package check_availability

import "errors"

var (
	// ErrInvalidRange возвращается, когда запрошенный интервал некорректен
	ErrInvalidRange = errors.New("check_availability: start must precede end")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("check_availability: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
