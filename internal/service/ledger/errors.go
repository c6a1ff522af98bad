package ledger

import "errors"

var (
	// ErrLockerNotFound возвращается, когда ячейка не найдена в каталоге
	ErrLockerNotFound = errors.New("ledger: locker not found")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("ledger: reservation not found")

	// ErrCapacityExhausted возвращается, когда на окно не осталось свободных ячеек нужного размера
	ErrCapacityExhausted = errors.New("ledger: capacity exhausted")

	// ErrForbidden возвращается, когда операцию выполняет не владелец бронирования
	ErrForbidden = errors.New("ledger: reservation belongs to another requester")

	// ErrInvalidWindow возвращается, когда окно бронирования имеет нулевую или отрицательную длительность
	ErrInvalidWindow = errors.New("ledger: end must be after start")

	// ErrTransientConflict возвращается, когда исчерпаны повторы после конфликтов сериализации
	ErrTransientConflict = errors.New("ledger: concurrent modification, retry later")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("ledger: invalid input data")

	// ErrInternal возвращается при внутренних ошибках хранилища или каталога
	ErrInternal = errors.New("ledger: internal error")
)
