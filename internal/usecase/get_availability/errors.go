package get_availability

import "errors"

var (
	// ErrLockerNotFound возвращается, когда ячейка не найдена
	ErrLockerNotFound = errors.New("get_availability: locker not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
