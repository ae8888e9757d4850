package create_appointment

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.MasterID <= 0 {
		return fmt.Errorf("%w: masterID must be positive", ErrInvalidInput)
	}

	if req.WorkplaceID <= 0 {
		return fmt.Errorf("%w: workplaceID must be positive", ErrInvalidInput)
	}

	if len(req.ProcedureIDs) == 0 {
		return fmt.Errorf("%w: at least one procedure is required", ErrInvalidInput)
	}

	for _, id := range req.ProcedureIDs {
		if id <= 0 {
			return fmt.Errorf("%w: procedureID must be positive", ErrInvalidInput)
		}
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime != nil && !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	return nil
}

// naiveLocal отбрасывает смещение часового пояса, сохраняя показания
// настенных часов. Время не конвертируется: 14:00+03:00 становится
// просто 14:00. Хранилище работает с наивными локальными временами.
func naiveLocal(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
