// Package allocation движок распределения столов: чистые функции над
// моделью занятости "слот × стол" для одного типа пространства на одну дату.
// Не хранит состояние и не ходит в базу - все данные передаются явно.
package allocation

// Booking бронирование в том виде, в котором его потребляет движок.
// Список бронирований уже отфильтрован выше по типу пространства, дате
// и активным статусам.
type Booking struct {
	TimeSlot   string // Метка стартового слота, например "9:00 AM"
	Duration   string // Метка длительности, например "2 hours", "1-day"
	DeskNumber *int   // Номер стола (1-based); nil у legacy-бронирований без назначенного стола
}
