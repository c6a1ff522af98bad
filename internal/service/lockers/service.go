package lockers

import (
	"context"
	"fmt"
	"strings"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

// Service сервис просмотра каталога ячеек
type Service struct {
	catalog LockerCatalog
	logger  Logger
}

// NewService создает новый экземпляр сервиса
func NewService(catalog LockerCatalog, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// Get возвращает ячейку по идентификатору
func (s *Service) Get(ctx context.Context, lockerID string) (*domain.Locker, error) {
	if strings.TrimSpace(lockerID) == "" {
		return nil, fmt.Errorf("%w: lockerID is required", ErrInvalidInput)
	}

	locker, err := s.catalog.GetLocker(ctx, lockerID)
	if err != nil {
		s.logger.Error("Get: failed to get locker id=%s: %v", lockerID, err)
		return nil, fmt.Errorf("%w: failed to get locker: %v", ErrInternal, err)
	}
	if locker == nil {
		s.logger.Warn("Get: locker id=%s not found", lockerID)
		return nil, ErrLockerNotFound
	}

	return locker, nil
}

// List возвращает все ячейки каталога
// Если передан size, остаются только ячейки с ненулевой вместимостью этого размера
func (s *Service) List(ctx context.Context, size *domain.LockerSize) ([]*domain.Locker, error) {
	lockers, err := s.catalog.ListLockers(ctx)
	if err != nil {
		s.logger.Error("List: failed to list lockers: %v", err)
		return nil, fmt.Errorf("%w: failed to list lockers: %v", ErrInternal, err)
	}

	if size == nil {
		return lockers, nil
	}

	if !size.IsValid() {
		return nil, fmt.Errorf("%w: unknown size %q", ErrInvalidInput, *size)
	}

	result := make([]*domain.Locker, 0, len(lockers))
	for _, l := range lockers {
		if l.CapacityFor(*size) > 0 {
			result = append(result, l)
		}
	}

	s.logger.Info("List: %d of %d lockers have size=%s", len(result), len(lockers), *size)

	return result, nil
}
