package lockers

import "errors"

var (
	// ErrLockerNotFound возвращается, когда ячейка не найдена
	ErrLockerNotFound = errors.New("lockers: locker not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("lockers: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("lockers: internal error")
)
