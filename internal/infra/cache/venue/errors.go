package venue

import "errors"

var (
	// ErrCacheMiss возвращается, когда записи нет в кэше или кэш выключен
	ErrCacheMiss = errors.New("venue.cache: cache miss")

	// ErrCacheFailure возвращается при ошибках Redis или сериализации
	ErrCacheFailure = errors.New("venue.cache: cache failure")
)
