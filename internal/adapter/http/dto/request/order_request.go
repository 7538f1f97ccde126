package request

import (
	"strings"

	"taller_jaison/internal/domain/entities"
	"taller_jaison/internal/usecase"

	"github.com/shopspring/decimal"
)

type ClientDraftRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type VehicleDraftRequest struct {
	Plate string `json:"plate"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  string `json:"year"`
	Color string `json:"color"`
}

// LineItemRequest accepts the price either as a JSON number or a string.
type LineItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price"`
}

// RegisterOrderRequest is the intake form. Either client_id or client must be
// set, and either vehicle_id or vehicle.
type RegisterOrderRequest struct {
	ClientID              string               `json:"client_id"`
	Client                *ClientDraftRequest  `json:"client"`
	VehicleID             string               `json:"vehicle_id"`
	Vehicle               *VehicleDraftRequest `json:"vehicle"`
	Description           string               `json:"description"`
	ServicePerformedNotes string               `json:"service_performed_notes"`
	Miles                 string               `json:"miles"`
	ApplyIVU              bool                 `json:"apply_ivu"`
	Items                 []LineItemRequest    `json:"items"`
	DamagedParts          []string             `json:"damaged_parts"`
	ManualParts           []string             `json:"manual_parts"`
	InspectionNotes       string               `json:"inspection_notes"`
}

func (r RegisterOrderRequest) ToCommand() usecase.RegisterOrderCommand {
	cmd := usecase.RegisterOrderCommand{
		ExistingClientID:      strings.TrimSpace(r.ClientID),
		ExistingVehicleID:     strings.TrimSpace(r.VehicleID),
		Description:           r.Description,
		ServicePerformedNotes: r.ServicePerformedNotes,
		Miles:                 r.Miles,
		ApplyIVU:              r.ApplyIVU,
		DamagedPartIDs:        r.DamagedParts,
		ManualParts:           r.ManualParts,
		InspectionNotes:       r.InspectionNotes,
	}
	if r.Client != nil {
		cmd.ClientDraft = entities.ClientDraft{Name: r.Client.Name, Phone: r.Client.Phone, Email: r.Client.Email}
	}
	if r.Vehicle != nil {
		cmd.VehicleDraft = entities.VehicleDraft{
			Plate: r.Vehicle.Plate,
			Brand: r.Vehicle.Brand,
			Model: r.Vehicle.Model,
			Year:  r.Vehicle.Year,
			Color: r.Vehicle.Color,
		}
	}
	cmd.Items = make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		cmd.Items = append(cmd.Items, entities.LineItem{Description: it.Description, Price: it.Price})
	}
	return cmd
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type NotesRequest struct {
	ServicePerformedNotes string `json:"service_performed_notes"`
}

// PaymentRequest registers a payment. Amount may be omitted for type "full",
// in which case the outstanding balance is charged.
type PaymentRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Method string           `json:"method" binding:"required"`
	Type   string           `json:"type" binding:"required"`
	Note   string           `json:"note"`
}

func (r PaymentRequest) ToCommand() usecase.AddPaymentCommand {
	return usecase.AddPaymentCommand{
		Amount: r.Amount,
		Method: entities.PaymentMethod(r.Method),
		Kind:   entities.PaymentKind(r.Type),
		Note:   r.Note,
	}
}
