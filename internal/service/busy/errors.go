package busy

import "errors"

var (
	// ErrUpstreamFetch возвращается, когда не удалось получить записи или блокировки.
	// Частичный результат никогда не возвращается.
	ErrUpstreamFetch = errors.New("busy: failed to fetch busy intervals")
)
