package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	MasterID     int64     // ID мастера
	Date         time.Time // Дата, на которую запрашиваются слоты (время игнорируется)
	ProcedureIDs []int64   // Выбранные процедуры, определяют длительность записи
	ClientID     *int64    // ID клиента для учёта time_coeff и первого визита (опционально)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	MasterID        int64       // ID мастера
	Date            time.Time   // Дата запроса
	DurationMinutes int         // Рассчитанная длительность записи
	Slots           []time.Time // Времена начала доступных слотов, по возрастанию
}
