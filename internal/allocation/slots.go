package allocation

// SlotsForBooking возвращает последовательность слотов, занимаемых
// бронированием: до durationHours слотов начиная со startSlot.
//
// Если startSlot не найден в allSlots, возвращается пустая последовательность -
// вызывающий код трактует это как нулевую вместимость, а не ошибку.
// Бронирование, выходящее за конец рабочего дня, обрезается по последнему
// слоту (без переноса на следующий день).
func SlotsForBooking(startSlot string, durationHours int, allSlots []string) []string {
	idx := slotIndex(startSlot, allSlots)
	if idx < 0 || durationHours <= 0 {
		return nil
	}

	end := idx + durationHours
	if end > len(allSlots) {
		end = len(allSlots)
	}

	return allSlots[idx:end]
}

// slotIndex возвращает позицию слота в последовательности или -1
func slotIndex(slot string, allSlots []string) int {
	for i, s := range allSlots {
		if s == slot {
			return i
		}
	}
	return -1
}
