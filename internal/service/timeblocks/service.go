package timeblocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/availability"
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	timeBlockRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/timeblock"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/timeblocks/models"
)

// Service сервис ручных блокировок времени
type Service struct {
	timeBlockRepo TimeBlockRepository
	location      *time.Location
	logger        Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(timeBlockRepo TimeBlockRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		timeBlockRepo: timeBlockRepo,
		location:      location,
		logger:        logger,
	}
}

// Create блокирует интервал времени для записи клиентов
func (s *Service) Create(ctx context.Context, req *models.CreateTimeBlockRequest) (*models.TimeBlockResponse, error) {
	s.logger.Info("Create: blocking [%s, %s) by user=%s",
		req.StartTime.UTC().Format(time.RFC3339), req.EndTime.UTC().Format(time.RFC3339), req.CreatedBy)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.timeBlockRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created time block id=%d", created.ID)
	return models.FromDomainTimeBlock(created), nil
}

// List получает блокировки, пересекающиеся с периодом.
// Даты задаются в часовом поясе бизнеса, обе границы включительно.
func (s *Service) List(ctx context.Context, req *models.ListTimeBlocksRequest) (*models.TimeBlockListResponse, error) {
	s.logger.Info("List: fetching time blocks from=%s to=%s", req.From, req.To)

	fromDate, err := availability.ParseCalendarDate(req.From)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	toDate, err := availability.ParseCalendarDate(req.To)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if toDate.Before(fromDate) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}

	from, _ := fromDate.DayBounds(s.location)
	_, to := toDate.DayBounds(s.location)

	blocks, err := s.timeBlockRepo.ListOverlapping(ctx, from, to)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d time blocks", len(blocks))
	return models.FromDomainTimeBlockList(blocks), nil
}

// Delete снимает блокировку
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting time block id=%d", id)

	if err := s.timeBlockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, timeBlockRepo.ErrTimeBlockNotFound) {
			s.logger.Warn("Delete: time block id=%d not found", id)
			return ErrTimeBlockNotFound
		}
		s.logger.Error("Delete: repository error for time block id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted time block id=%d", id)
	return nil
}

// validateCreateRequest валидирует запрос на блокировку
func validateCreateRequest(req *models.CreateTimeBlockRequest) error {
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.StartTime.Before(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if req.Reason != nil && len([]rune(*req.Reason)) > domain.MaxTimeBlockReasonLength {
		return fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxTimeBlockReasonLength)
	}

	return nil
}
