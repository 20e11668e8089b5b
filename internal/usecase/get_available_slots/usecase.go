package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBookingService/internal/availability"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/slots"
)

// UseCase use case для получения слотов на день
type UseCase struct {
	serviceRepo  ServiceRepository
	slotsService SlotsService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	slotsService SlotsService,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:  serviceRepo,
		slotsService: slotsService,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов.
// Закрытый день возвращает пустой список, а не ошибку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, duration=%d, service=%v, onlyAvailable=%t",
		req.Date, req.ServiceDurationMinutes, req.ServiceID, req.OnlyAvailable)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Длительность услуги из каталога
	duration := req.ServiceDurationMinutes
	if req.ServiceID != nil {
		service, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !service.IsActive {
			uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", *req.ServiceID)
			return nil, ErrServiceNotFound
		}
		duration = service.DurationMinutes
	}

	// 4. Считаем сетку слотов
	day, err := uc.slotsService.Compute(ctx, date, duration, now)
	if err != nil {
		return nil, mapSlotsError(err)
	}

	result := day.Slots
	if req.OnlyAvailable {
		result = availability.AvailableOnly(result)
	}

	slotsResp := make([]Slot, 0, len(result))
	for _, s := range result {
		slotsResp = append(slotsResp, Slot{Time: s.Time.UTC(), Available: s.Available})
	}

	uc.logger.Info("GetAvailableSlots: returned %d slots for date=%s", len(slotsResp), date)

	return &Response{
		Date:                   date.String(),
		ServiceDurationMinutes: duration,
		Slots:                  slotsResp,
	}, nil
}

// mapSlotsError переводит ошибки сервиса слотов в ошибки use case
func mapSlotsError(err error) error {
	switch {
	case errors.Is(err, slots.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, slots.ErrConfigurationMissing):
		return fmt.Errorf("%w: %v", ErrConfigurationMissing, err)
	case errors.Is(err, slots.ErrUpstreamFetch):
		return fmt.Errorf("%w: %v", ErrUpstreamFetch, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
