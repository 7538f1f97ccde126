// Package notify reports committed order changes to the shop's spreadsheet
// webhook. Delivery is fire-and-forget: failures are logged, never retried
// and never surfaced to the caller.
package notify

import (
	"encoding/json"

	"taller_jaison/internal/domain/entities"
	"taller_jaison/internal/domain/ledger"
	"taller_jaison/internal/usecase/interfaces"
)

const (
	UnknownClientName  = "Error Cliente"
	UnknownVehicleInfo = "Error Vehículo"
	UnknownPlate       = "S/T"
	PendingWork        = "Pendiente"
)

// Payload is the row sent to the sheet. Field names are the sheet's columns.
type Payload struct {
	Token             string      `json:"token"`
	OrderID           string      `json:"orden_id"`
	Status            string      `json:"estado"`
	ClientName        string      `json:"cliente_nombre"`
	ClientPhone       string      `json:"cliente_telefono"`
	VehicleInfo       string      `json:"vehiculo_info"`
	VehiclePlate      string      `json:"vehiculo_placa"`
	ReportedProblem   string      `json:"falla_reportada"`
	WorkPerformed     string      `json:"trabajo_realizado"`
	ServiceItems      string      `json:"items_servicio"`
	Total             json.Number `json:"total"`
	Paid              json.Number `json:"pagado"`
	Debt              json.Number `json:"deuda"`
	LastPaymentMethod string      `json:"metodo_pago"`
}

type payloadItem struct {
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
}

// BuildPayload flattens a change into a sheet row. Debt is total minus paid
// and goes negative on overpayment.
func BuildPayload(change interfaces.OrderChange, apiToken string) Payload {
	o := change.Order
	p := Payload{
		Token:             apiToken,
		OrderID:           o.ID,
		Status:            string(o.Status),
		ClientName:        UnknownClientName,
		VehicleInfo:       UnknownVehicleInfo,
		VehiclePlate:      UnknownPlate,
		ReportedProblem:   o.Description,
		WorkPerformed:     o.ServicePerformedNotes,
		ServiceItems:      encodeItems(o.Items),
		Total:             json.Number(o.Total.String()),
		Paid:              json.Number(ledger.TotalPaid(o.Payments).String()),
		Debt:              json.Number(ledger.Balance(o).String()),
		LastPaymentMethod: ledger.LastPaymentMethod(o),
	}
	if change.ClientFound {
		p.ClientName = change.Client.Name
		p.ClientPhone = change.Client.Phone
	}
	if change.VehicleFound {
		p.VehicleInfo = change.Vehicle.Descriptor()
		p.VehiclePlate = change.Vehicle.Plate
	}
	if p.WorkPerformed == "" {
		p.WorkPerformed = PendingWork
	}
	return p
}

func encodeItems(items []entities.LineItem) string {
	out := make([]payloadItem, len(items))
	for i, it := range items {
		out[i] = payloadItem{Description: it.Description, Price: json.Number(it.Price.String())}
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return "[]"
	}
	return string(raw)
}
