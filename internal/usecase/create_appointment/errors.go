package create_appointment

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = errors.New("master not found")

	// ErrWorkplaceNotFound возвращается, когда рабочее место не найдено
	ErrWorkplaceNotFound = errors.New("workplace not found")

	// ErrTimeConflict возвращается, когда запрошенное время пересекается
	// с существующей записью мастера
	ErrTimeConflict = errors.New("requested time conflicts with an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
