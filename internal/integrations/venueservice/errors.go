package venueservice

import "errors"

var (
	// ErrBranchNotFound возвращается, когда филиал компании не найден
	ErrBranchNotFound = errors.New("venueservice: branch not found")

	// ErrCourtNotFound возвращается, когда корт не найден в филиале
	ErrCourtNotFound = errors.New("venueservice: court not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("venueservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("venueservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что сервис площадок недоступен и проверку существования следует пропустить
	ErrServiceDegraded = errors.New("venueservice unavailable: graceful degradation applied")
)
