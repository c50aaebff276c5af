package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrInvalidService возвращается, когда услуга не входит в allow-list
	ErrInvalidService = errors.New("invalid service selected")

	// ErrPartialAssignment возвращается, когда обновление привело бы слот
	// в состояние с частично заполненным назначением
	ErrPartialAssignment = errors.New("assignment fields must be set together")

	// ErrEmptyUpdate возвращается при обновлении без единого поля
	ErrEmptyUpdate = errors.New("no fields to update")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots service: internal error")
)
