package workplaces

import "errors"

var (
	// ErrWorkplaceNotFound возвращается, когда рабочее место не найдено
	ErrWorkplaceNotFound = errors.New("workplace not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
