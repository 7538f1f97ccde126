package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is a billed service or part. Price is never negative.
type LineItem struct {
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

func (i LineItem) Validate() error {
	if strings.TrimSpace(i.Description) == "" || i.Price.IsNegative() {
		return ErrInvalidLineItem
	}
	return nil
}

// CommonServices is the quick-pick list offered when billing an order.
var CommonServices = []string{
	"Cambio de Aceite y Filtro",
	"Lavado de Chasis",
	"Frenos",
	"Alineación",
	"Diagnóstico",
	"Aire Acondicionado",
	"Batería",
	"Gomas",
	"Tune-up",
	"Otro",
}
