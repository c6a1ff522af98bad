package ledger

import (
	"fmt"
	"strings"
)

// validateCreateRequest валидирует входные данные запроса на создание
func validateCreateRequest(req *CreateRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.LockerID) == "" {
		return fmt.Errorf("%w: lockerID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.RequesterID) == "" {
		return fmt.Errorf("%w: requesterID is required", ErrInvalidInput)
	}

	if !req.Size.IsValid() {
		return fmt.Errorf("%w: unknown size %q", ErrInvalidInput, req.Size)
	}

	if !req.Window.IsValid() {
		return ErrInvalidWindow
	}

	return nil
}

// validateIDs проверяет, что идентификаторы не пустые
func validateIDs(reservationID, requesterID string) error {
	if strings.TrimSpace(reservationID) == "" {
		return fmt.Errorf("%w: reservationID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(requesterID) == "" {
		return fmt.Errorf("%w: requesterID is required", ErrInvalidInput)
	}
	return nil
}
