package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/slots"
	"github.com/m04kA/SMC-BarberBookingService/pkg/ptr"
	"github.com/m04kA/SMC-BarberBookingService/pkg/txmanager"
)

// UseCase use case для переноса записи: отмена старой и создание новой в одной транзакции
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	slotsService    SlotsService
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	slotsService SlotsService,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		slotsService:    slotsService,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет перенос записи
// Если новое время недоступно, старая запись остаётся без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: appointment=%d, user=%s, admin=%t, newStart=%s",
		req.AppointmentID, req.UserID, req.IsAdmin, req.NewStartTime.UTC().Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	start := req.NewStartTime.UTC()

	var cancelled, created *domain.Appointment

	// 3. Отмена и создание в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем исходную запись с блокировкой строки
		old, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("failed to get appointment: %w", err)
		}

		// 3.2. Проверяем права доступа и статус
		if !req.IsAdmin && !old.IsOwnedBy(req.UserID) {
			uc.logger.Warn("RescheduleAppointment: access denied for user=%s to appointment id=%d", req.UserID, old.ID)
			return ErrAccessDenied
		}

		if err := domain.ValidateTransition(old.Status, domain.StatusCancelled); err != nil {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d cannot be rescheduled, status=%s", old.ID, old.Status)
			return ErrCannotReschedule
		}

		// 3.3. Политика переноса для клиента
		if !req.IsAdmin {
			settings, err := uc.slotsService.LoadSettings(txCtx)
			if err != nil {
				return err
			}
			if !settings.RebookingWindow().AllowsChange(old, now) {
				uc.logger.Warn("RescheduleAppointment: rebooking window closed for appointment id=%d", old.ID)
				return ErrRebookingWindowClosed
			}
		}

		// 3.4. Получаем услугу новой записи
		serviceID := ptr.Deref(req.ServiceID, old.ServiceID)

		service, err := uc.serviceRepo.GetByID(txCtx, serviceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("RescheduleAppointment: service id=%d not found", serviceID)
				return ErrServiceNotFound
			}
			return fmt.Errorf("failed to get service: %w", err)
		}
		if !service.IsActive {
			uc.logger.Warn("RescheduleAppointment: service id=%d is inactive", serviceID)
			return ErrServiceNotFound
		}

		// 3.5. Отменяем старую запись, чтобы её интервал освободился для проверки
		if err := uc.appointmentRepo.UpdateStatus(txCtx, old.ID, domain.StatusCancelled); err != nil {
			return fmt.Errorf("failed to cancel appointment: %w", err)
		}

		// 3.6. Проверяем новое время
		ok, settings, err := uc.slotsService.IsBookable(txCtx, start, service.DurationMinutes, now)
		if err != nil {
			return err
		}
		if !ok {
			uc.logger.Warn("RescheduleAppointment: slot %s is not available", start.Format(time.RFC3339))
			uc.metrics.IncBookingConflict(conflictUnavailable)
			return ErrSlotNotAvailable
		}

		// 3.7. Создаем новую запись
		notes := old.Notes
		if req.Notes != nil {
			notes = req.Notes
		}

		next, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			UserID:      old.UserID,
			ServiceID:   service.ID,
			StartTime:   start,
			EndTime:     start.Add(time.Duration(service.DurationMinutes) * time.Minute),
			Status:      settings.InitialStatus(),
			Notes:       notes,
			ServiceName: service.Name,
			Price:       service.Price,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("RescheduleAppointment: overlap rejected by storage for %s", start.Format(time.RFC3339))
				uc.metrics.IncBookingConflict(conflictOverlap)
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("failed to create appointment: %w", err)
		}

		old.Status = domain.StatusCancelled
		old.UpdatedAt = now
		cancelled = old
		created = next
		return nil
	})

	if err != nil {
		return nil, uc.mapError(err)
	}

	uc.metrics.IncAppointmentCreated(string(created.Status))
	uc.logger.Info("RescheduleAppointment: appointment id=%d moved to id=%d, status=%s",
		cancelled.ID, created.ID, created.Status)

	return &Response{
		Cancelled:   models.FromDomainAppointment(cancelled),
		Appointment: models.FromDomainAppointment(created),
	}, nil
}

// domainErrors ошибки use case, которые возвращаются как есть
var domainErrors = []error{
	ErrAppointmentNotFound,
	ErrAccessDenied,
	ErrCannotReschedule,
	ErrRebookingWindowClosed,
	ErrServiceNotFound,
	ErrSlotNotAvailable,
}

// mapError переводит ошибки транзакции в ошибки use case
func (uc *UseCase) mapError(err error) error {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return target
		}
	}

	switch {
	case errors.Is(err, txmanager.ErrSerialization):
		uc.logger.Warn("RescheduleAppointment: serialization retries exhausted: %v", err)
		uc.metrics.IncBookingConflict(conflictSerialization)
		return ErrSlotNotAvailable
	case errors.Is(err, slots.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, slots.ErrConfigurationMissing):
		uc.logger.Error("RescheduleAppointment: %v", err)
		return fmt.Errorf("%w: %v", ErrConfigurationMissing, err)
	case errors.Is(err, slots.ErrUpstreamFetch):
		uc.logger.Error("RescheduleAppointment: %v", err)
		return fmt.Errorf("%w: %v", ErrUpstreamFetch, err)
	default:
		uc.logger.Error("RescheduleAppointment: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
