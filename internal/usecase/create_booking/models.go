package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64     // ID пользователя
	WorkspaceType string    // Тип рабочего пространства
	Date          time.Time // Дата бронирования (без времени)
	TimeSlot      string    // Стартовый слот, например "9:00 AM"
	Duration      string    // Метка длительности, например "2 hours"
	Notes         *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64     // ID созданного бронирования
	UserID        int64     // ID пользователя
	WorkspaceType string    // Тип рабочего пространства
	BookingDate   time.Time // Дата бронирования
	TimeSlot      string    // Стартовый слот
	Duration      string    // Метка длительности
	DurationHours int       // Длительность в часовых слотах
	DeskNumber    int       // Назначенный стол (1-based)
	Status        string    // Статус бронирования
	Notes         *string   // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
