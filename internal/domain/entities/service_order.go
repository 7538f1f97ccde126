package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOrder is a repair job for one vehicle of one client.
//
// Storage model (collection "jaison_orders"):
//   - ClientID / VehicleID reference the client collection; the vehicle lives
//     in the client's garage.
//
// Monetary representation:
//   - Subtotal, Tax and Total are computed when the items are set and are not
//     recomputed retroactively. They are exact decimals; rounding to two
//     places happens only when rendering.
//   - IsPaid is derived from the payments ledger (see package ledger).
type ServiceOrder struct {
	ID                    string          `json:"id"`
	VehicleID             string          `json:"vehicleId"`
	ClientID              string          `json:"clientId"`
	Description           string          `json:"description"`
	ServicePerformedNotes string          `json:"servicePerformedNotes,omitempty"`
	Status                ServiceStatus   `json:"status"`
	EntryDate             time.Time       `json:"entryDate"`
	Miles                 string          `json:"miles"`
	Items                 []LineItem      `json:"items"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	Tax                   decimal.Decimal `json:"tax"`
	Total                 decimal.Decimal `json:"total"`
	ApplyIVU              bool            `json:"applyIVU"`
	Inspection            Inspection      `json:"inspection"`
	Payments              []Payment       `json:"payments"`
	IsPaid                bool            `json:"isPaid"`
}

// SetStatus moves the order to s. Every member of the enumeration is accepted
// from every other member; only values outside the enumeration are rejected.
func (o *ServiceOrder) SetStatus(s ServiceStatus) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	o.Status = s
	return nil
}

// Clone returns a deep copy so callers can mutate slices without aliasing
// the stored order.
func (o ServiceOrder) Clone() ServiceOrder {
	out := o
	if o.Items != nil {
		out.Items = make([]LineItem, len(o.Items))
		copy(out.Items, o.Items)
	}
	if o.Payments != nil {
		out.Payments = make([]Payment, len(o.Payments))
		copy(out.Payments, o.Payments)
	}
	if o.Inspection.Parts != nil {
		out.Inspection.Parts = make([]InspectionPart, len(o.Inspection.Parts))
		copy(out.Inspection.Parts, o.Inspection.Parts)
	}
	return out
}
