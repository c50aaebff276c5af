package get_available_slots

import "errors"

var (
	// ErrInvalidDateRange возвращается, когда начало диапазона позже конца
	ErrInvalidDateRange = errors.New("get_available_slots: invalid date range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
