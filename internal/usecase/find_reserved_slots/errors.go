package find_reserved_slots

import "errors"

var (
	// ErrSiteNotFound возвращается, когда площадка не найдена
	ErrSiteNotFound = errors.New("site not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
