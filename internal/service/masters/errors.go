package masters

import "errors"

var (
	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = errors.New("master not found")

	// ErrMasterHasAppointments возвращается при попытке удалить мастера
	// с будущими активными записями
	ErrMasterHasAppointments = errors.New("master has future active appointments")

	// ErrMasterHasWorkSlots возвращается при попытке удалить мастера
	// с будущими рабочими окнами
	ErrMasterHasWorkSlots = errors.New("master has future work slots")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
