package create_appointment

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
	"github.com/m04kA/SMC-BarberBookingService/pkg/txmanager"
)

// UseCase use case для создания записи
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

// Execute выполняет use case создания записи
// Проверка слота и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.AppointmentResponse, error) {
	uc.logger.Info("CreateAppointment: user=%s, service=%d, start=%s",
		req.UserID, req.ServiceID, req.StartTime.UTC().Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	start := req.StartTime.UTC()

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	var result *domain.Appointment

	// 4. Выполняем проверку и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Пересчитываем сетку дня и проверяем выбранное время
		ok, settings, err := uc.slotsService.IsBookable(txCtx, start, service.DurationMinutes, now)
		if err != nil {
			return err
		}
		if !ok {
			uc.logger.Warn("CreateAppointment: slot %s is not available", start.Format(time.RFC3339))
			uc.metrics.IncBookingConflict(conflictUnavailable)
			return ErrSlotNotAvailable
		}

		// 4.2. Создаем запись с денормализацией данных услуги
		appointment := &domain.Appointment{
			UserID:      req.UserID,
			ServiceID:   service.ID,
			StartTime:   start,
			EndTime:     start.Add(time.Duration(service.DurationMinutes) * time.Minute),
			Status:      settings.InitialStatus(),
			Notes:       req.Notes,
			ServiceName: service.Name,
			Price:       service.Price,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateAppointment: overlap rejected by storage for %s", start.Format(time.RFC3339))
				uc.metrics.IncBookingConflict(conflictOverlap)
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("failed to create appointment: %w", err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.mapError(err)
	}

	uc.metrics.IncAppointmentCreated(string(result.Status))
	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, status=%s", result.ID, result.Status)

	return models.FromDomainAppointment(result), nil
}

// mapError переводит ошибки транзакции в ошибки use case
func (uc *UseCase) mapError(err error) error {
	switch {
	case errors.Is(err, ErrSlotNotAvailable):
		return ErrSlotNotAvailable
	case errors.Is(err, txmanager.ErrSerialization):
		uc.logger.Warn("CreateAppointment: serialization retries exhausted: %v", err)
		uc.metrics.IncBookingConflict(conflictSerialization)
		return ErrSlotNotAvailable
	case errors.Is(err, slots.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, slots.ErrConfigurationMissing):
		uc.logger.Error("CreateAppointment: %v", err)
		return fmt.Errorf("%w: %v", ErrConfigurationMissing, err)
	case errors.Is(err, slots.ErrUpstreamFetch):
		uc.logger.Error("CreateAppointment: %v", err)
		return fmt.Errorf("%w: %v", ErrUpstreamFetch, err)
	default:
		uc.logger.Error("CreateAppointment: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
