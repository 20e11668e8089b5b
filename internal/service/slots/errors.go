package slots

import "errors"

var (
	// ErrConfigurationMissing возвращается, когда настройки бизнеса отсутствуют или повреждены
	ErrConfigurationMissing = errors.New("slots: business configuration missing")

	// ErrUpstreamFetch возвращается, когда не удалось получить записи или блокировки
	ErrUpstreamFetch = errors.New("slots: failed to fetch busy intervals")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("slots: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots: internal error")
)
