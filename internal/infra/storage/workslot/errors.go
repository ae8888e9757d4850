package workslot

import "errors"

var (
	// ErrWorkSlotNotFound возвращается, когда рабочий слот не найден
	ErrWorkSlotNotFound = errors.New("workslot.repository: work slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("workslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("workslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("workslot.repository: failed to scan row")
)
