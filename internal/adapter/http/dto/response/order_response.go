package response

import (
	"time"

	"taller_jaison/internal/domain/entities"
	"taller_jaison/internal/usecase"

	"github.com/shopspring/decimal"
)

// Money renders an amount with two decimals, the way receipts show it.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type LineItemResponse struct {
	Description string `json:"description"`
	Price       string `json:"price"`
}

type InspectionPartResponse struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Damaged bool   `json:"damaged"`
}

type InspectionResponse struct {
	Parts []InspectionPartResponse `json:"parts"`
	Notes string                   `json:"notes"`
}

type PaymentResponse struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Amount string    `json:"amount"`
	Method string    `json:"method"`
	Type   string    `json:"type"`
	Note   string    `json:"note"`
}

type OrderResponse struct {
	ID                    string             `json:"id"`
	ClientID              string             `json:"client_id"`
	VehicleID             string             `json:"vehicle_id"`
	Description           string             `json:"description"`
	ServicePerformedNotes string             `json:"service_performed_notes"`
	Status                string             `json:"status"`
	StatusLabel           string             `json:"status_label"`
	EntryDate             time.Time          `json:"entry_date"`
	Miles                 string             `json:"miles"`
	Items                 []LineItemResponse `json:"items"`
	Subtotal              string             `json:"subtotal"`
	Tax                   string             `json:"tax"`
	Total                 string             `json:"total"`
	ApplyIVU              bool               `json:"apply_ivu"`
	Inspection            InspectionResponse `json:"inspection"`
	Payments              []PaymentResponse  `json:"payments"`
	IsPaid                bool               `json:"is_paid"`
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{Description: it.Description, Price: Money(it.Price)})
	}
	return out
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, PaymentResponse{
			ID:     p.ID,
			Date:   p.Date,
			Amount: Money(p.Amount),
			Method: string(p.Method),
			Type:   string(p.Kind),
			Note:   p.Note,
		})
	}
	return out
}

func FromOrder(o entities.ServiceOrder) OrderResponse {
	parts := make([]InspectionPartResponse, 0, len(o.Inspection.Parts))
	for _, p := range o.Inspection.Parts {
		parts = append(parts, InspectionPartResponse{ID: p.ID, Label: p.Label, Damaged: p.Damaged})
	}
	return OrderResponse{
		ID:                    o.ID,
		ClientID:              o.ClientID,
		VehicleID:             o.VehicleID,
		Description:           o.Description,
		ServicePerformedNotes: o.ServicePerformedNotes,
		Status:                string(o.Status),
		StatusLabel:           o.Status.Label(),
		EntryDate:             o.EntryDate,
		Miles:                 o.Miles,
		Items:                 FromLineItems(o.Items),
		Subtotal:              Money(o.Subtotal),
		Tax:                   Money(o.Tax),
		Total:                 Money(o.Total),
		ApplyIVU:              o.ApplyIVU,
		Inspection:            InspectionResponse{Parts: parts, Notes: o.Inspection.Notes},
		Payments:              FromPayments(o.Payments),
		IsPaid:                o.IsPaid,
	}
}

// OrderDetailsResponse is an order joined with its client and vehicle. A
// dangling reference is reported through the *_found flags.
type OrderDetailsResponse struct {
	Order        OrderResponse    `json:"order"`
	Client       *ClientResponse  `json:"client,omitempty"`
	ClientFound  bool             `json:"client_found"`
	Vehicle      *VehicleResponse `json:"vehicle,omitempty"`
	VehicleFound bool             `json:"vehicle_found"`
	TotalPaid    string           `json:"total_paid"`
	Balance      string           `json:"balance"`
	Outstanding  string           `json:"outstanding"`
}

func FromOrderDetails(d usecase.OrderDetails) OrderDetailsResponse {
	out := OrderDetailsResponse{
		Order:        FromOrder(d.Order),
		ClientFound:  d.ClientFound,
		VehicleFound: d.VehicleFound,
		TotalPaid:    Money(d.TotalPaid),
		Balance:      Money(d.Balance),
		Outstanding:  Money(d.Outstanding),
	}
	if d.ClientFound {
		c := FromClient(d.Client)
		out.Client = &c
	}
	if d.VehicleFound {
		v := FromVehicle(d.Vehicle)
		out.Vehicle = &v
	}
	return out
}

func FromOrderDetailsList(list []usecase.OrderDetails) []OrderDetailsResponse {
	out := make([]OrderDetailsResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromOrderDetails(d))
	}
	return out
}

type OrderStatsResponse struct {
	Active int `json:"active"`
	Ready  int `json:"ready"`
	Total  int `json:"total"`
}

func FromOrderStats(s usecase.OrderStats) OrderStatsResponse {
	return OrderStatsResponse{Active: s.Active, Ready: s.Ready, Total: s.Total}
}

type DashboardResponse struct {
	Mode   string                 `json:"mode"`
	Stats  OrderStatsResponse     `json:"stats"`
	Orders []OrderDetailsResponse `json:"orders"`
}
