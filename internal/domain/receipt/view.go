package receipt

import (
	"fmt"
	"strings"
	"time"

	"taller_jaison/internal/domain/entities"
	"taller_jaison/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

const (
	ShopName           = "JAISON AUTO REPAIR"
	UnknownVehicle     = "Vehículo desconocido"
	UnknownClient      = "Cliente desconocido"
	moneyDecimalPlaces = 2
)

// View is the rendered state of a receipt.
type View struct {
	OrderID         string
	EntryDate       time.Time
	StatusLabel     string
	ClientName      string
	ClientPhone     string
	ClientEmail     string
	VehicleFound    bool
	VehicleLabel    string
	Plate           string
	Miles           string
	Description     string
	WorkPerformed   string
	Items           []entities.LineItem
	DamagedParts    []string
	InspectionNotes string
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	ApplyIVU        bool
	Total           decimal.Decimal
	Payments        []entities.Payment
	TotalPaid       decimal.Decimal
	Pending         decimal.Decimal
	FullyPaid       bool
	LastPaymentDate *time.Time
}

// NewView resolves the vehicle from the snapshot's garage. A vehicle that is
// no longer in the garage renders as a placeholder instead of failing.
func NewView(s Snapshot) View {
	o := s.Order
	v := View{
		OrderID:         o.ID,
		EntryDate:       o.EntryDate,
		StatusLabel:     o.Status.Label(),
		ClientName:      s.Client.Name,
		ClientPhone:     s.Client.Phone,
		ClientEmail:     s.Client.Email,
		VehicleLabel:    UnknownVehicle,
		Miles:           o.Miles,
		Description:     o.Description,
		WorkPerformed:   o.ServicePerformedNotes,
		Items:           o.Items,
		InspectionNotes: o.Inspection.Notes,
		Subtotal:        o.Subtotal,
		Tax:             o.Tax,
		ApplyIVU:        o.ApplyIVU,
		Total:           o.Total,
		Payments:        o.Payments,
		TotalPaid:       ledger.TotalPaid(o.Payments),
		Pending:         ledger.Outstanding(o),
		FullyPaid:       ledger.IsPaid(ledger.Balance(o)),
	}
	if strings.TrimSpace(v.ClientName) == "" {
		v.ClientName = UnknownClient
	}
	if vehicle, ok := s.Client.FindVehicle(o.VehicleID); ok {
		v.VehicleFound = true
		v.VehicleLabel = vehicle.Descriptor()
		v.Plate = vehicle.Plate
	}
	for _, p := range o.Inspection.Parts {
		if p.Damaged {
			v.DamagedParts = append(v.DamagedParts, p.Label)
		}
	}
	if last, ok := ledger.LastPaymentDate(o); ok {
		v.LastPaymentDate = &last
	}
	return v
}

func money(v decimal.Decimal) string {
	return "$" + v.StringFixed(moneyDecimalPlaces)
}

// FormatText renders a printable plain-text receipt.
func FormatText(v View) string {
	var b strings.Builder
	line := strings.Repeat("=", 40)
	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, ShopName)
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Orden: %s\n", v.OrderID)
	fmt.Fprintf(&b, "Fecha: %s\n", v.EntryDate.Format("02/01/2006"))
	fmt.Fprintf(&b, "Estado: %s\n", v.StatusLabel)
	fmt.Fprintf(&b, "Cliente: %s\n", v.ClientName)
	if v.ClientPhone != "" {
		fmt.Fprintf(&b, "Teléfono: %s\n", v.ClientPhone)
	}
	fmt.Fprintf(&b, "Vehículo: %s\n", v.VehicleLabel)
	if v.Plate != "" {
		fmt.Fprintf(&b, "Tablilla: %s\n", v.Plate)
	}
	if v.Miles != "" {
		fmt.Fprintf(&b, "Millaje: %s\n", v.Miles)
	}
	if v.Description != "" {
		fmt.Fprintf(&b, "Falla reportada: %s\n", v.Description)
	}
	if v.WorkPerformed != "" {
		fmt.Fprintf(&b, "Trabajo realizado: %s\n", v.WorkPerformed)
	}
	if len(v.DamagedParts) > 0 {
		fmt.Fprintf(&b, "Daños: %s\n", strings.Join(v.DamagedParts, ", "))
	}
	fmt.Fprintln(&b, strings.Repeat("-", 40))
	for _, it := range v.Items {
		fmt.Fprintf(&b, "%-28s %11s\n", it.Description, money(it.Price))
	}
	fmt.Fprintln(&b, strings.Repeat("-", 40))
	fmt.Fprintf(&b, "%-28s %11s\n", "Subtotal", money(v.Subtotal))
	if v.ApplyIVU {
		fmt.Fprintf(&b, "%-28s %11s\n", "IVU (11.5%)", money(v.Tax))
	}
	fmt.Fprintf(&b, "%-28s %11s\n", "TOTAL", money(v.Total))
	for _, p := range v.Payments {
		fmt.Fprintf(&b, "%s %-17s %11s\n", p.Date.Format("02/01/2006"), p.Method, money(p.Amount))
	}
	fmt.Fprintf(&b, "%-28s %11s\n", "Pagado", money(v.TotalPaid))
	if v.FullyPaid {
		fmt.Fprintln(&b, "PAGADO")
	} else {
		fmt.Fprintf(&b, "%-28s %11s\n", "Pendiente", money(v.Pending))
	}
	return b.String()
}
