package notify

import "errors"

var (
	// ErrInvalidRecipient возвращается, когда email получателя синтаксически
	// некорректен на момент отправки; отправка прерывается
	ErrInvalidRecipient = errors.New("notify: invalid recipient address")

	// ErrSlotNotFound возвращается, когда слот для уведомления не найден
	ErrSlotNotFound = errors.New("notify: slot not found")

	// ErrSlotNotBooked возвращается, когда слот не содержит полного назначения
	ErrSlotNotBooked = errors.New("notify: slot carries no assignment")
)
