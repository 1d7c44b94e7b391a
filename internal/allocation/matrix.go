package allocation

// Matrix карта занятости: для каждого слота - массив длины totalDesks,
// где индекс i отвечает столу i+1 (true = стол свободен в этот слот)
type Matrix map[string][]bool

// BuildMatrix строит матрицу занятости по существующим бронированиям.
//
// Все столы изначально свободны во всех слотах. Каждое бронирование
// монотонно выставляет false в своих слотах, поэтому результат не зависит
// от порядка применения бронирований. Бронирование без назначенного стола
// (или с номером вне диапазона) консервативно занимает ВСЕ столы в своих
// слотах - деградация точности для исторических данных, не баг.
func BuildMatrix(allSlots []string, totalDesks int, bookings []Booking) Matrix {
	matrix := make(Matrix, len(allSlots))
	for _, slot := range allSlots {
		row := make([]bool, totalDesks)
		for i := range row {
			row[i] = true
		}
		matrix[slot] = row
	}

	for _, booking := range bookings {
		hours := DurationHours(booking.Duration, len(allSlots))

		for _, slot := range SlotsForBooking(booking.TimeSlot, hours, allSlots) {
			row := matrix[slot]

			if booking.DeskNumber != nil && *booking.DeskNumber >= 1 && *booking.DeskNumber <= totalDesks {
				row[*booking.DeskNumber-1] = false
				continue
			}

			// Legacy-бронирование: блокируем все столы
			for i := range row {
				row[i] = false
			}
		}
	}

	return matrix
}

// deskFreeForSpan проверяет, что стол (0-based индекс) свободен во всех слотах интервала
func (m Matrix) deskFreeForSpan(desk int, span []string) bool {
	for _, slot := range span {
		if !m[slot][desk] {
			return false
		}
	}
	return true
}
