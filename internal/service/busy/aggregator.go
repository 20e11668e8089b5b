package busy

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-BarberBookingService/internal/availability"
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/dbmetrics"
)

// Aggregator собирает занятые интервалы окна из записей и ручных блокировок
type Aggregator struct {
	appointmentRepo AppointmentRepository
	timeBlockRepo   TimeBlockRepository
	logger          Logger
}

// NewAggregator создает новый экземпляр агрегатора
func NewAggregator(
	appointmentRepo AppointmentRepository,
	timeBlockRepo TimeBlockRepository,
	logger Logger,
) *Aggregator {
	return &Aggregator{
		appointmentRepo: appointmentRepo,
		timeBlockRepo:   timeBlockRepo,
		logger:          logger,
	}
}

// Collect возвращает занятые интервалы, пересекающиеся с окном [from, to).
// Оба чтения выполняются параллельно; если любое из них падает, падает весь вызов.
// Внутри транзакции чтения идут последовательно, так как одна транзакция не допускает параллельных запросов.
func (a *Aggregator) Collect(ctx context.Context, from, to time.Time, bufferMinutes int) ([]domain.BusyInterval, error) {
	return a.collect(ctx, from, to, bufferMinutes, 0)
}

// CollectExcluding работает как Collect, но не учитывает запись appointmentID.
// Используется при переносе записи, чтобы её текущий интервал не мешал выбору нового.
func (a *Aggregator) CollectExcluding(ctx context.Context, from, to time.Time, bufferMinutes int, appointmentID int64) ([]domain.BusyInterval, error) {
	return a.collect(ctx, from, to, bufferMinutes, appointmentID)
}

func (a *Aggregator) collect(ctx context.Context, from, to time.Time, bufferMinutes int, excludeID int64) ([]domain.BusyInterval, error) {
	var (
		appointments []*domain.Appointment
		blocks       []*domain.TimeBlock
	)

	fetchAppointments := func(ctx context.Context) error {
		result, err := a.appointmentRepo.ListOccupying(ctx, from, to, bufferMinutes)
		if err != nil {
			return fmt.Errorf("%w: appointments: %w", ErrUpstreamFetch, err)
		}
		appointments = result
		return nil
	}

	fetchBlocks := func(ctx context.Context) error {
		result, err := a.timeBlockRepo.ListOverlapping(ctx, from, to)
		if err != nil {
			return fmt.Errorf("%w: time blocks: %w", ErrUpstreamFetch, err)
		}
		blocks = result
		return nil
	}

	if dbmetrics.IsInTransaction(ctx) {
		if err := fetchAppointments(ctx); err != nil {
			a.logger.Error("CollectBusy: %v", err)
			return nil, err
		}
		if err := fetchBlocks(ctx); err != nil {
			a.logger.Error("CollectBusy: %v", err)
			return nil, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return fetchAppointments(gctx) })
		g.Go(func() error { return fetchBlocks(gctx) })

		if err := g.Wait(); err != nil {
			a.logger.Error("CollectBusy: %v", err)
			return nil, err
		}
	}

	if excludeID > 0 {
		appointments = withoutAppointment(appointments, excludeID)
	}

	busy := availability.BuildBusyIntervals(appointments, blocks, bufferMinutes)

	a.logger.Info("CollectBusy: window=[%s, %s), appointments=%d, blocks=%d, busy=%d",
		from.Format(time.RFC3339), to.Format(time.RFC3339), len(appointments), len(blocks), len(busy))

	return busy, nil
}

func withoutAppointment(appointments []*domain.Appointment, id int64) []*domain.Appointment {
	out := make([]*domain.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.ID != id {
			out = append(out, appointment)
		}
	}
	return out
}
