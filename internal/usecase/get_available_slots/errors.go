package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrConfigurationMissing возвращается, когда настройки бизнеса отсутствуют или повреждены
	ErrConfigurationMissing = errors.New("business configuration missing")

	// ErrUpstreamFetch возвращается, когда не удалось получить записи или блокировки
	ErrUpstreamFetch = errors.New("failed to fetch busy intervals")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
