package allocation

import (
	"regexp"
	"strconv"
	"strings"
)

// hoursPattern вылавливает ведущее число перед "hour"/"hours" в незнакомых метках
var hoursPattern = regexp.MustCompile(`^(\d+)\s*-?\s*hours?`)

// DurationHours конвертирует метку длительности в число последовательных
// часовых слотов.
//
// "1-day" занимает все слоты дня; "1-week" и "1-month" умножают число слотов
// на 7 и 30 - это унаследованное упрощение модели, а не реальные календарные
// дни. Нераспознанная метка разбирается по ведущему числу, иначе - 1 час.
func DurationHours(label string, totalSlots int) int {
	hours, _ := durationHours(label, totalSlots)
	return hours
}

// KnownDuration сообщает, распозналась ли метка без отката к значению
// по умолчанию. Откат молча меняет размер бронирования, поэтому вызывающий
// код должен его логировать.
func KnownDuration(label string) bool {
	_, known := durationHours(label, 1)
	return known
}

func durationHours(label string, totalSlots int) (int, bool) {
	normalized := strings.ToLower(strings.TrimSpace(label))

	switch normalized {
	case "1 hour", "1-hour":
		return 1, true
	case "2 hours", "2-hours":
		return 2, true
	case "3 hours":
		return 3, true
	case "4 hours", "4-hours":
		return 4, true
	case "5 hours":
		return 5, true
	case "6 hours":
		return 6, true
	case "1-day":
		return totalSlots, true
	case "1-week":
		return totalSlots * 7, true
	case "1-month":
		return totalSlots * 30, true
	}

	if m := hoursPattern.FindStringSubmatch(normalized); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, true
		}
	}

	return 1, false
}
