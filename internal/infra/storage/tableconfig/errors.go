package tableconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация столов не найдена
	ErrConfigNotFound = errors.New("tableconfig.repository: table configuration not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tableconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tableconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tableconfig.repository: failed to scan row")
)
