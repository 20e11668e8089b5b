package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-BarberBookingService/internal/availability"
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ServiceID != nil {
		if *req.ServiceID <= 0 {
			return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
		}
		return nil
	}

	return validateDuration(req.ServiceDurationMinutes)
}

// validateDuration проверяет длительность услуги
func validateDuration(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: serviceDuration must be positive", ErrInvalidInput)
	}

	if minutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: serviceDuration must be at most %d", ErrInvalidInput, domain.MaxServiceDurationMinutes)
	}

	return nil
}

// parseDate разбирает дату запроса
func parseDate(s string) (availability.CalendarDate, error) {
	date, err := availability.ParseCalendarDate(s)
	if err != nil {
		return availability.CalendarDate{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return date, nil
}
