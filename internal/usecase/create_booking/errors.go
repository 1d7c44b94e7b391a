package create_booking

import "errors"

var (
	// ErrInvalidSlot возвращается, когда стартовый слот отсутствует в конфигурации
	ErrInvalidSlot = errors.New("create_booking: start slot is not configured")

	// ErrNoDeskAvailable возвращается, когда ни один стол не свободен на весь
	// запрошенный интервал - пользователю предлагается выбрать другое время
	// или длительность
	ErrNoDeskAvailable = errors.New("create_booking: no available desk for the selected time slot and duration")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
