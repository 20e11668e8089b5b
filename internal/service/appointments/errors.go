package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда запись в текущем статусе нельзя отменить
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrCancellationWindowClosed возвращается, когда до записи осталось меньше допустимого времени
	ErrCancellationWindowClosed = errors.New("cancellation window has passed")

	// ErrNotAwaitingConfirmation возвращается, когда клиент подтверждает запись без предложенного времени
	ErrNotAwaitingConfirmation = errors.New("appointment is not awaiting client confirmation")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrSlotNotAvailable возвращается, когда смена статуса пересекается с другой записью
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrConfigurationMissing возвращается, когда настройки бизнеса отсутствуют
	ErrConfigurationMissing = errors.New("business configuration missing")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
