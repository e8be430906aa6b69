package pricingrule

import "errors"

var (
	// ErrCacheMiss возвращается KV, когда ключ отсутствует
	ErrCacheMiss = errors.New("pricingrule.cache: cache miss")

	// ErrDecode возвращается при повреждённом значении в кэше
	ErrDecode = errors.New("pricingrule.cache: failed to decode cached rules")
)
