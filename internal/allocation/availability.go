package allocation

// UnavailableStartSlots возвращает множество стартовых слотов, недоступных
// для запрошенной длительности. Используется для дизейбла опций в селекторе,
// нигде не персистится.
//
// Стартовый слот недоступен, если:
//   - его интервал короче требуемого (слот не найден или бронирование
//     выходит за конец дня);
//   - ни один стол не свободен на ВЕСЬ требуемый интервал.
//
// Слот доступен тогда и только тогда, когда существует стол, свободный
// в каждом слоте интервала.
func UnavailableStartSlots(durationLabel string, allSlots []string, totalDesks int, bookings []Booking) map[string]struct{} {
	hours := DurationHours(durationLabel, len(allSlots))
	matrix := BuildMatrix(allSlots, totalDesks, bookings)

	unavailable := make(map[string]struct{})

	for i, start := range allSlots {
		span := SlotsForBooking(start, hours, allSlots)

		// Интервал короче требуемого либо выходит за закрытие
		if len(span) < hours || i+hours > len(allSlots) {
			unavailable[start] = struct{}{}
			continue
		}

		if !spanHasFreeDesk(matrix, span, totalDesks) {
			unavailable[start] = struct{}{}
		}
	}

	return unavailable
}

// spanHasFreeDesk проверяет, есть ли хотя бы один стол, свободный во всех слотах интервала
func spanHasFreeDesk(matrix Matrix, span []string, totalDesks int) bool {
	for desk := 0; desk < totalDesks; desk++ {
		if matrix.deskFreeForSpan(desk, span) {
			return true
		}
	}
	return false
}
