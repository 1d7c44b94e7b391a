package allocation

import "errors"

var (
	// ErrNoDeskAvailable возвращается, когда ни один стол не свободен на весь
	// требуемый интервал (включая случай некорректного стартового слота)
	ErrNoDeskAvailable = errors.New("allocation: no available desk")
)
