package create_appointment

import "time"

// Request модель запроса на создание записи
type Request struct {
	ClientID     int64      // ID клиента
	MasterID     int64      // ID мастера
	WorkplaceID  int64      // ID рабочего места
	ProcedureIDs []int64    // Выбранные процедуры, минимум одна
	StartTime    time.Time  // Время начала записи
	EndTime      *time.Time // Время окончания; nil = начало + рассчитанная длительность
}

// Response модель ответа с созданной записью
type Response struct {
	ID           int64     `json:"id"`
	ClientID     int64     `json:"client_id"`
	MasterID     int64     `json:"master_id"`
	WorkplaceID  int64     `json:"workplace_id"`
	ProcedureIDs []int64   `json:"procedure_ids"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
