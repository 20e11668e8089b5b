package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда исходная запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied возвращается, когда клиент переносит чужую запись
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotReschedule возвращается, когда запись в текущем статусе нельзя перенести
	ErrCannotReschedule = errors.New("appointment cannot be rescheduled")

	// ErrRebookingWindowClosed возвращается, когда до записи осталось меньше допустимого времени
	ErrRebookingWindowClosed = errors.New("rebooking window has passed")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("service not found")

	// ErrSlotNotAvailable возвращается, когда новое время уже занято или недоступно
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrConfigurationMissing возвращается, когда настройки бизнеса отсутствуют или повреждены
	ErrConfigurationMissing = errors.New("business configuration missing")

	// ErrUpstreamFetch возвращается, когда не удалось получить записи или блокировки
	ErrUpstreamFetch = errors.New("failed to fetch busy intervals")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// Причины конфликтов для метрик
const (
	conflictUnavailable   = "unavailable"
	conflictOverlap       = "overlap"
	conflictSerialization = "serialization"
)
