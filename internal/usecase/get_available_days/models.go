package get_available_days

import "time"

// Request модель запроса на получение доступных дней
type Request struct {
	MasterID  int64     // ID мастера
	StartDate time.Time // Начало периода (время игнорируется); zero = сегодня
	DaysCount int       // Длина периода в днях; 0 = дефолт
}

// Response модель ответа со списком доступных дней
type Response struct {
	MasterID int64       // ID мастера
	Days     []time.Time // Уникальные календарные дни по возрастанию, время обнулено
}
