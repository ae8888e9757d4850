package workslots

import "errors"

var (
	// ErrWorkSlotNotFound возвращается, когда рабочее окно не найдено
	ErrWorkSlotNotFound = errors.New("work slot not found")

	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = errors.New("master not found")

	// ErrWorkplaceNotFound возвращается, когда рабочее место не найдено
	ErrWorkplaceNotFound = errors.New("workplace not found")

	// ErrWorkplaceInactive возвращается при попытке создать окно
	// на деактивированном рабочем месте
	ErrWorkplaceInactive = errors.New("workplace is inactive")

	// ErrSlotHasAppointments возвращается при попытке удалить окно
	// с активными записями внутри
	ErrSlotHasAppointments = errors.New("work slot has active appointments")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
