package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда строка настроек бизнеса отсутствует
	ErrSettingsNotFound = errors.New("settings.repository: business settings not found")

	// ErrMalformedSettings возвращается, когда сохранённые настройки невозможно разобрать
	ErrMalformedSettings = errors.New("settings.repository: malformed business settings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
