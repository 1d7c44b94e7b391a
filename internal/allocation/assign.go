package allocation

// AssignDesk выбирает стол для нового бронирования по принципу first-fit:
// столы перебираются по возрастанию номера, побеждает первый, свободный
// во всех слотах требуемого интервала (детерминированный tie-break -
// наименьший номер).
//
// Возвращает 1-based номер стола либо ErrNoDeskAvailable, если ни один стол
// не подходит (в том числе при некорректном или обрезанном интервале).
// Вызывающий код обязан повторить назначение непосредственно перед вставкой
// бронирования: результат авторитетен только на момент чтения bookings.
func AssignDesk(startSlot, durationLabel string, allSlots []string, totalDesks int, bookings []Booking) (int, error) {
	hours := DurationHours(durationLabel, len(allSlots))

	span := SlotsForBooking(startSlot, hours, allSlots)
	if len(span) < hours {
		return 0, ErrNoDeskAvailable
	}

	matrix := BuildMatrix(allSlots, totalDesks, bookings)

	for desk := 0; desk < totalDesks; desk++ {
		if matrix.deskFreeForSpan(desk, span) {
			return desk + 1, nil
		}
	}

	return 0, ErrNoDeskAvailable
}
