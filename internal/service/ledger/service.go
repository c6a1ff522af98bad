package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
	"github.com/MaximeC37/BikerBox-sub000/internal/service/availability"
	"github.com/MaximeC37/BikerBox-sub000/pkg/keylock"
	"github.com/MaximeC37/BikerBox-sub000/pkg/metrics"
	"github.com/MaximeC37/BikerBox-sub000/pkg/txmanager"
)

// Ledger журнал бронирований
// Единственный владелец коллекции бронирований: создание и отмена выполняются
// под блокировкой по ID ячейки, а проверка доступности и запись происходят
// в одной сериализуемой транзакции.
type Ledger struct {
	catalog    LockerCatalog
	store      ReservationStore
	pricer     PriceCalculator
	ids        IdentityGenerator
	txManager  TransactionManager
	metrics    Metrics
	clock      Clock
	logger     Logger
	locks      *keylock.KeyLock
	maxRetries int
}

// NewLedger создает новый экземпляр журнала бронирований
// maxRetries - количество повторов после конфликта сериализации
// nil clock и metrics заменяются на RealClock и NopMetrics
func NewLedger(
	catalog LockerCatalog,
	store ReservationStore,
	pricer PriceCalculator,
	ids IdentityGenerator,
	txManager TransactionManager,
	clock Clock,
	metrics Metrics,
	logger Logger,
	maxRetries int,
) *Ledger {
	if clock == nil {
		clock = RealClock{}
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Ledger{
		catalog:    catalog,
		store:      store,
		pricer:     pricer,
		ids:        ids,
		txManager:  txManager,
		metrics:    metrics,
		clock:      clock,
		logger:     logger,
		locks:      keylock.New(),
		maxRetries: maxRetries,
	}
}

// Create создает бронирование ячейки указанного размера на окно
// Проверка доступности и запись выполняются атомарно относительно других
// операций с той же ячейкой
func (l *Ledger) Create(ctx context.Context, req *CreateRequest) (*domain.Reservation, error) {
	if err := validateCreateRequest(req); err != nil {
		l.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	l.logger.Info("Create: requester=%s, locker=%s, size=%s, window=%s..%s",
		req.RequesterID, req.LockerID, req.Size, req.Window.Start, req.Window.End)

	// 1. Получаем ячейку из каталога
	locker, err := l.catalog.GetLocker(ctx, req.LockerID)
	if err != nil {
		l.logger.Error("Create: failed to get locker id=%s: %v", req.LockerID, err)
		return nil, fmt.Errorf("%w: failed to get locker: %v", ErrInternal, err)
	}
	if locker == nil {
		l.logger.Warn("Create: locker id=%s not found", req.LockerID)
		return nil, ErrLockerNotFound
	}

	// 2. Блокируем ячейку на время проверки и записи
	unlock := l.locks.Lock(locker.ID)
	defer unlock()

	var result *domain.Reservation

	// 3. Проверка доступности, расчет цены и запись в сериализуемой транзакции
	err = l.withRetry(ctx, "Create", func(txCtx context.Context) error {
		reservations, err := l.store.FindByLocker(txCtx, locker.ID)
		if err != nil {
			return l.storeError("find reservations by locker", err)
		}

		if !availability.IsAvailable(locker, req.Size, req.Window, reservations) {
			l.logger.Warn("Create: no %s slots left at locker=%s for %s..%s",
				req.Size, locker.ID, req.Window.Start, req.Window.End)
			return ErrCapacityExhausted
		}

		reservation := &domain.Reservation{
			ID:          l.ids.NewReservationID(),
			LockerID:    locker.ID,
			RequesterID: req.RequesterID,
			Size:        req.Size,
			Window:      req.Window,
			Status:      domain.StatusConfirmed,
			AccessCode:  l.ids.NewAccessCode(),
			Price:       l.pricer.CalculatePrice(req.Size, req.Window),
			CreatedAt:   l.clock.Now(),
		}

		if err := l.store.Insert(txCtx, reservation); err != nil {
			return l.storeError("insert reservation", err)
		}

		result = reservation
		return nil
	})

	if err != nil {
		l.metrics.ReservationOutcome(outcomeOf(err), string(req.Size))
		return nil, err
	}

	l.metrics.ReservationOutcome(metrics.OutcomeCreated, string(result.Size))
	l.metrics.ReservationPrice(string(result.Size), result.Price)
	l.logger.Info("Create: successfully created reservation id=%s, price=%.2f", result.ID, result.Price)

	return result, nil
}

// Cancel отменяет бронирование
// Отменить может только владелец; бронирование удаляется физически
func (l *Ledger) Cancel(ctx context.Context, reservationID, requesterID string) error {
	if err := validateIDs(reservationID, requesterID); err != nil {
		l.logger.Warn("Cancel: validation failed: %v", err)
		return err
	}

	l.logger.Info("Cancel: cancelling reservation id=%s by requester=%s", reservationID, requesterID)

	// Находим бронирование, чтобы узнать ячейку для блокировки
	reservation, err := l.store.FindByID(ctx, reservationID)
	if err != nil {
		l.logger.Error("Cancel: failed to get reservation id=%s: %v", reservationID, err)
		return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}
	if reservation == nil {
		l.logger.Warn("Cancel: reservation id=%s not found", reservationID)
		return ErrReservationNotFound
	}

	unlock := l.locks.Lock(reservation.LockerID)
	defer unlock()

	err = l.withRetry(ctx, "Cancel", func(txCtx context.Context) error {
		// Перечитываем под блокировкой: бронирование могли удалить параллельно
		current, err := l.store.FindByID(txCtx, reservationID)
		if err != nil {
			return l.storeError("find reservation", err)
		}
		if current == nil {
			return ErrReservationNotFound
		}

		if !current.IsOwnedBy(requesterID) {
			l.logger.Warn("Cancel: access denied for requester=%s to reservation id=%s", requesterID, reservationID)
			return ErrForbidden
		}

		deleted, err := l.store.DeleteByID(txCtx, reservationID)
		if err != nil {
			return l.storeError("delete reservation", err)
		}
		if !deleted {
			return ErrReservationNotFound
		}
		return nil
	})

	if err != nil {
		return err
	}

	l.metrics.ReservationOutcome(metrics.OutcomeCancelled, string(reservation.Size))
	l.logger.Info("Cancel: successfully cancelled reservation id=%s", reservationID)
	return nil
}

// GetByID возвращает бронирование владельцу
func (l *Ledger) GetByID(ctx context.Context, reservationID, requesterID string) (*domain.Reservation, error) {
	if err := validateIDs(reservationID, requesterID); err != nil {
		return nil, err
	}

	reservation, err := l.store.FindByID(ctx, reservationID)
	if err != nil {
		l.logger.Error("GetByID: failed to get reservation id=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}
	if reservation == nil {
		l.logger.Warn("GetByID: reservation id=%s not found", reservationID)
		return nil, ErrReservationNotFound
	}

	if !reservation.IsOwnedBy(requesterID) {
		l.logger.Warn("GetByID: access denied for requester=%s to reservation id=%s", requesterID, reservationID)
		return nil, ErrForbidden
	}

	return reservation, nil
}

// ListForRequester возвращает бронирования пользователя, последние по началу окна первыми
func (l *Ledger) ListForRequester(ctx context.Context, requesterID string) ([]*domain.Reservation, error) {
	if requesterID == "" {
		return nil, fmt.Errorf("%w: requesterID is required", ErrInvalidInput)
	}

	l.logger.Info("ListForRequester: fetching reservations for requester=%s", requesterID)

	reservations, err := l.store.FindByRequester(ctx, requesterID)
	if err != nil {
		l.logger.Error("ListForRequester: store error for requester=%s: %v", requesterID, err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	result := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r != nil && r.IsActive() && r.IsOwnedBy(requesterID) {
			result = append(result, r)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Window.Start.After(result[j].Window.Start)
	})

	l.logger.Info("ListForRequester: fetched %d reservations for requester=%s", len(result), requesterID)
	return result, nil
}

// withRetry выполняет fn в сериализуемой транзакции и повторяет ее после конфликта
// После исчерпания повторов возвращает ErrTransientConflict
func (l *Ledger) withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	for attempt := 0; ; attempt++ {
		err := l.txManager.DoSerializable(ctx, fn)
		if err == nil {
			return nil
		}

		if !txmanager.IsConflict(err) {
			return err
		}

		if attempt >= l.maxRetries {
			l.logger.Error("%s: giving up after %d attempts: %v", op, attempt+1, err)
			return fmt.Errorf("%w: %v", ErrTransientConflict, err)
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %v", ErrTransientConflict, ctxErr)
		}

		l.metrics.LedgerRetry()
		l.logger.Warn("%s: serialization conflict, retry %d/%d", op, attempt+1, l.maxRetries)
	}
}

// storeError оборачивает ошибку хранилища, сохраняя конфликты для повтора
func (l *Ledger) storeError(op string, err error) error {
	if txmanager.IsConflict(err) {
		return err
	}
	l.logger.Error("ledger: failed to %s: %v", op, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}

// outcomeOf определяет исход неудачного создания для метрик
func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrCapacityExhausted):
		return metrics.OutcomeCapacityExhausted
	case errors.Is(err, ErrTransientConflict):
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeFailed
	}
}
