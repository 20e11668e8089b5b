package propose_appointment_time

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotPropose возвращается, когда для записи в текущем статусе нельзя предложить новое время
	ErrCannotPropose = errors.New("new time cannot be proposed for appointment")

	// ErrSlotNotAvailable возвращается, когда предложенное время занято или недоступно
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
