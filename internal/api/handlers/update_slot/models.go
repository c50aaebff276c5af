package update_slot

import (
	"time"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
	"github.com/dsevbo/MBP-BookingService/pkg/types"
)

// UpdateSlotRequest HTTP request model.
// Все поля опциональны, обновляются только переданные.
type UpdateSlotRequest struct {
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	ServiceName *string `json:"service_name,omitempty"`
	ClientName  *string `json:"client_name,omitempty"`
	ClientEmail *string `json:"client_email,omitempty"`
}

// ToDomainUpdate конвертирует HTTP запрос в доменное обновление
func (r *UpdateSlotRequest) ToDomainUpdate() (domain.SlotUpdate, error) {
	var update domain.SlotUpdate

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return domain.SlotUpdate{}, err
		}
		update.Date = &date
	}
	if r.Time != nil {
		t, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return domain.SlotUpdate{}, err
		}
		update.Time = &t
	}

	update.ServiceName = r.ServiceName
	update.ClientName = r.ClientName
	update.ClientEmail = r.ClientEmail

	return update, nil
}
