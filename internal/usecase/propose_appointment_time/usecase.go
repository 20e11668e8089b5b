package propose_appointment_time

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/slots"
	"github.com/m04kA/SMC-BarberBookingService/pkg/txmanager"
)

// UseCase use case для переноса записи администратором.
// Запись переезжает на новое время и ждёт подтверждения клиента (client_approval_pending).
type UseCase struct {
	appointmentRepo AppointmentRepository
	slotsService    SlotsService
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	slotsService SlotsService,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		slotsService:    slotsService,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute предлагает клиенту новое время записи
// Запись сохраняет свой ID и длительность; если новое время занято, запись не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.AppointmentResponse, error) {
	uc.logger.Info("ProposeAppointmentTime: appointment=%d, admin=%s, newStart=%s",
		req.AppointmentID, req.AdminID, req.NewStartTime.UTC().Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ProposeAppointmentTime: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	start := req.NewStartTime.UTC()

	var result *domain.Appointment

	// 2. Проверка и перенос в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем запись с блокировкой строки
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("ProposeAppointmentTime: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("failed to get appointment: %w", err)
		}

		if err := domain.ValidateTransition(appointment.Status, domain.StatusClientApprovalPending); err != nil {
			uc.logger.Warn("ProposeAppointmentTime: appointment id=%d has status=%s", appointment.ID, appointment.Status)
			return ErrCannotPropose
		}

		// 2.2. Проверяем новое время, не учитывая текущий интервал записи
		duration := appointment.DurationMinutes()
		ok, _, err := uc.slotsService.IsBookableExcluding(txCtx, start, duration, now, appointment.ID)
		if err != nil {
			return err
		}
		if !ok {
			uc.logger.Warn("ProposeAppointmentTime: slot %s is not available", start.Format(time.RFC3339))
			uc.metrics.IncBookingConflict(conflictUnavailable)
			return ErrSlotNotAvailable
		}

		// 2.3. Переносим запись
		end := start.Add(time.Duration(duration) * time.Minute)
		if err := uc.appointmentRepo.Reschedule(txCtx, appointment.ID, start, end, domain.StatusClientApprovalPending); err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("ProposeAppointmentTime: overlap rejected by storage for %s", start.Format(time.RFC3339))
				uc.metrics.IncBookingConflict(conflictOverlap)
				return ErrSlotNotAvailable
			}
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("failed to reschedule appointment: %w", err)
		}

		appointment.StartTime = start
		appointment.EndTime = end
		appointment.Status = domain.StatusClientApprovalPending
		appointment.UpdatedAt = now
		result = appointment
		return nil
	})

	if err != nil {
		return nil, uc.mapError(err)
	}

	uc.logger.Info("ProposeAppointmentTime: appointment id=%d moved to %s, waiting for client",
		result.ID, result.StartTime.Format(time.RFC3339))

	return models.FromDomainAppointment(result), nil
}

// domainErrors ошибки use case, которые возвращаются как есть
var domainErrors = []error{
	ErrAppointmentNotFound,
	ErrCannotPropose,
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
		uc.logger.Warn("ProposeAppointmentTime: serialization retries exhausted: %v", err)
		uc.metrics.IncBookingConflict(conflictSerialization)
		return ErrSlotNotAvailable
	case errors.Is(err, slots.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, slots.ErrConfigurationMissing):
		uc.logger.Error("ProposeAppointmentTime: %v", err)
		return fmt.Errorf("%w: %v", ErrConfigurationMissing, err)
	case errors.Is(err, slots.ErrUpstreamFetch):
		uc.logger.Error("ProposeAppointmentTime: %v", err)
		return fmt.Errorf("%w: %v", ErrUpstreamFetch, err)
	default:
		uc.logger.Error("ProposeAppointmentTime: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
