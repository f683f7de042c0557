package site

import "errors"

var (
	// ErrSiteNotFound возвращается, когда площадка не найдена
	ErrSiteNotFound = errors.New("site.repository: site not found")

	// ErrDoorGroupNotFound возвращается, когда группа дверей не найдена
	ErrDoorGroupNotFound = errors.New("site.repository: door group not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("site.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("site.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("site.repository: failed to scan row")
)
