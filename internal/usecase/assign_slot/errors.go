package assign_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот с указанным ID не существует
	ErrSlotNotFound = errors.New("assign_slot: slot not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_slot: internal error")
)

// Тексты накапливаемых ошибок валидации (формат оригинальной формы бронирования)
const (
	msgInvalidService = "Invalid service selected."
	msgSlotIDRequired = "The `booking_id` field is required."
	msgNameRequired   = "The `name` field is required."
	msgInvalidEmail   = "Invalid email address."
)
