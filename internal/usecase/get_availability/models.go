package get_availability

import (
	"time"
)

// Request модель запроса на получение доступности слотов
type Request struct {
	WorkspaceType string    // Тип рабочего пространства
	Date          time.Time // Дата (без времени)
	Duration      string    // Запрошенная метка длительности, например "2 hours"
}

// Response модель ответа с доступностью стартовых слотов
type Response struct {
	WorkspaceType string    // Тип рабочего пространства
	Date          time.Time // Дата, на которую запрашивалась доступность
	Duration      string    // Запрошенная длительность
	DurationHours int       // Длительность в часовых слотах
	TotalDesks    int       // Общее число столов
	Slots         []Slot    // Все стартовые слоты в порядке конфигурации
}

// Slot стартовый слот с признаком доступности
type Slot struct {
	Label     string // Метка слота, например "9:00 AM"
	Available bool   // false - слот дизейблится в селекторе
}

// UnavailableLabels возвращает метки недоступных стартовых слотов
func (r *Response) UnavailableLabels() []string {
	labels := make([]string, 0)
	for _, s := range r.Slots {
		if !s.Available {
			labels = append(labels, s.Label)
		}
	}
	return labels
}
