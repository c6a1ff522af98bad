package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Исходы операций с бронированиями
const (
	OutcomeCreated           = "created"
	OutcomeCapacityExhausted = "capacity_exhausted"
	OutcomeConflict          = "conflict"
	OutcomeCancelled         = "cancelled"
	OutcomeFailed            = "failed"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	reservations     *prometheus.CounterVec
	ledgerRetries    prometheus.Counter
	reservationPrice *prometheus.HistogramVec

	registerer prometheus.Registerer
}

// New создает и регистрирует метрики в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре (для тестов)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_total",
			Help:        "Reservation operations by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome", "size"}),
		ledgerRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "ledger_retries_total",
			Help:        "Reservation creation retries after serialization conflicts",
			ConstLabels: constLabels,
		}),
		reservationPrice: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "reservation_price",
			Help:        "Price of created reservations",
			ConstLabels: constLabels,
			Buckets:     []float64{5, 10, 25, 50, 100, 200, 400},
		}, []string{"size"}),
		registerer: reg,
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.reservations, m.ledgerRetries, m.reservationPrice)
	return m
}

// ObserveHTTP записывает результат HTTP запроса
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ReservationOutcome увеличивает счетчик исхода операции
func (m *Metrics) ReservationOutcome(outcome string, size string) {
	m.reservations.WithLabelValues(outcome, size).Inc()
}

// ReservationPrice записывает цену созданного бронирования
func (m *Metrics) ReservationPrice(size string, price float64) {
	m.reservationPrice.WithLabelValues(size).Observe(price)
}

// LedgerRetry увеличивает счетчик повторов транзакции
func (m *Metrics) LedgerRetry() {
	m.ledgerRetries.Inc()
}

// RegisterDB регистрирует метрики пула соединений
func (m *Metrics) RegisterDB(db *sql.DB, dbName string) error {
	return m.registerer.Register(collectors.NewDBStatsCollector(db, dbName))
}
