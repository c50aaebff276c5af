package domain

import (
	"time"

	"github.com/dsevbo/MBP-BookingService/pkg/types"
)

// Slot represents a bookable unit of capacity: a (date, time) row that
// optionally carries an assignment (service + client data).
type Slot struct {
	ID   int64
	Date time.Time
	Time types.TimeString

	// Assignment fields. A slot is available iff all three are nil;
	// partial assignment is not a valid state.
	ServiceName *string
	ClientName  *string
	ClientEmail *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the slot carries no assignment
func (s *Slot) IsAvailable() bool {
	return s.ServiceName == nil && s.ClientName == nil && s.ClientEmail == nil
}

// IsBooked returns true if the slot carries a complete assignment
// with a service from the allow-list
func (s *Slot) IsBooked() bool {
	return s.ServiceName != nil && s.ClientName != nil && s.ClientEmail != nil &&
		IsValidService(*s.ServiceName)
}

// SlotUpdate describes a partial update of a slot row.
// Nil fields are left untouched; the ID itself is never updatable.
type SlotUpdate struct {
	Date        *time.Time
	Time        *types.TimeString
	ServiceName *string
	ClientName  *string
	ClientEmail *string
}

// IsEmpty returns true if the update touches no fields
func (u SlotUpdate) IsEmpty() bool {
	return u.Date == nil && u.Time == nil &&
		u.ServiceName == nil && u.ClientName == nil && u.ClientEmail == nil
}

// TouchesAssignment returns true if the update writes any assignment field
func (u SlotUpdate) TouchesAssignment() bool {
	return u.ServiceName != nil || u.ClientName != nil || u.ClientEmail != nil
}

// SlotFilter ограничивает выборку слотов по диапазону дат.
// Nil-границы означают отсутствие ограничения с соответствующей стороны.
type SlotFilter struct {
	FromDate *time.Time // date >= FromDate
	ToDate   *time.Time // date <= ToDate
}
