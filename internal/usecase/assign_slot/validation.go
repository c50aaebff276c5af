package assign_slot

import "github.com/dsevbo/MBP-BookingService/internal/domain"

// validateRequest проверяет запрос на бронирование.
// Порядок: обязательность полей, затем формат, затем доменные проверки.
// Все ошибки накапливаются, чтобы клиент получил полный список за один вызов.
func validateRequest(req *Request) domain.ValidationErrors {
	var errs domain.ValidationErrors

	// Обязательность полей
	if req.SlotID <= 0 {
		errs = append(errs, msgSlotIDRequired)
	}
	if req.ClientName == "" {
		errs = append(errs, msgNameRequired)
	}

	// Формат email (пустой email попадает сюда же, как в оригинальной форме)
	if !domain.IsValidEmail(req.ClientEmail) {
		errs = append(errs, msgInvalidEmail)
	}

	// Доменная проверка: услуга из allow-list
	if !domain.IsValidService(req.ServiceName) {
		errs = append(errs, msgInvalidService)
	}

	return errs
}
