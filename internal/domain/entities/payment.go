package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is one of the fixed payment methods accepted at the counter.
type PaymentMethod string

const (
	PaymentMethodEfectivo       PaymentMethod = "Efectivo"
	PaymentMethodAthMovil       PaymentMethod = "Ath Móvil"
	PaymentMethodTarjetaDebito  PaymentMethod = "Tarjeta de débito"
	PaymentMethodTarjetaCredito PaymentMethod = "Tarjeta de crédito"
	PaymentMethodCheque         PaymentMethod = "Cheque"
)

var paymentMethods = []PaymentMethod{
	PaymentMethodEfectivo,
	PaymentMethodAthMovil,
	PaymentMethodTarjetaDebito,
	PaymentMethodTarjetaCredito,
	PaymentMethodCheque,
}

func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

// ParsePaymentMethod matches raw against the fixed set, ignoring case and
// surrounding blanks, and returns the canonical spelling.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	raw = strings.TrimSpace(raw)
	for _, m := range paymentMethods {
		if strings.EqualFold(raw, string(m)) {
			return m, nil
		}
	}
	return "", ErrInvalidPaymentMethod
}

// PaymentKind distinguishes a settle-in-full payment from an installment (abono).
type PaymentKind string

const (
	PaymentKindFull    PaymentKind = "full"
	PaymentKindPartial PaymentKind = "partial"
)

func ParsePaymentKind(raw string) (PaymentKind, error) {
	switch PaymentKind(strings.ToLower(strings.TrimSpace(raw))) {
	case PaymentKindFull:
		return PaymentKindFull, nil
	case PaymentKindPartial:
		return PaymentKindPartial, nil
	}
	return "", ErrInvalidPaymentKind
}

// Payment is one entry of an order's append-only ledger.
type Payment struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Method PaymentMethod   `json:"method"`
	Kind   PaymentKind     `json:"type"`
	Note   string          `json:"note"`
}
