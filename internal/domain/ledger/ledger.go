// Package ledger holds the money rules of a service order: totals, the IVU
// sales tax, the append-only payment ledger and the derived paid flag.
package ledger

import (
	"errors"
	"strings"
	"time"

	"taller_jaison/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	// IVURate is the Puerto Rico sales-and-use tax applied when an order opts in.
	IVURate = decimal.RequireFromString("0.115")
	// PaidTolerance absorbs sub-cent remainders left by two-decimal payments.
	PaidTolerance = decimal.RequireFromString("0.01")
)

const (
	NoteFullPayment    = "Pago Completo"
	NotePartialPayment = "Abono"
	PendingMethod      = "Pendiente"
)

var ErrInvalidAmount = errors.New("payment amount must be greater than zero")

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals sums the item prices and, when applyIVU is set, adds the tax.
// Values are exact; nothing is rounded here.
func ComputeTotals(items []entities.LineItem, applyIVU bool) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Price)
	}
	tax := decimal.Zero
	if applyIVU {
		tax = subtotal.Mul(IVURate)
	}
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal.Add(tax)}
}

func TotalPaid(payments []entities.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// Balance is total minus everything paid. Negative means overpaid.
func Balance(o entities.ServiceOrder) decimal.Decimal {
	return o.Total.Sub(TotalPaid(o.Payments))
}

func IsPaid(balance decimal.Decimal) bool {
	return balance.LessThanOrEqual(PaidTolerance)
}

// Outstanding is the balance clamped at zero, the figure shown as "deuda".
func Outstanding(o entities.ServiceOrder) decimal.Decimal {
	b := Balance(o)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}

// FullPaymentAmount is the amount prefilled when settling in full.
func FullPaymentAmount(o entities.ServiceOrder) decimal.Decimal {
	return Outstanding(o).Round(2)
}

// LastPaymentMethod reports the method of the most recent payment, or
// "Pendiente" when nothing has been paid yet.
func LastPaymentMethod(o entities.ServiceOrder) string {
	if len(o.Payments) == 0 {
		return PendingMethod
	}
	return string(o.Payments[len(o.Payments)-1].Method)
}

func LastPaymentDate(o entities.ServiceOrder) (time.Time, bool) {
	if len(o.Payments) == 0 {
		return time.Time{}, false
	}
	return o.Payments[len(o.Payments)-1].Date, true
}

type PaymentInput struct {
	Amount decimal.Decimal
	Method entities.PaymentMethod
	Kind   entities.PaymentKind
	Note   string
}

// AddPayment appends a payment and recomputes IsPaid. The input order is not
// modified. Overpayment is accepted as-is.
func AddPayment(o entities.ServiceOrder, in PaymentInput, now time.Time, newID func() string) (entities.ServiceOrder, error) {
	if !in.Amount.IsPositive() {
		return entities.ServiceOrder{}, ErrInvalidAmount
	}
	method, err := entities.ParsePaymentMethod(string(in.Method))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	kind, err := entities.ParsePaymentKind(string(in.Kind))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	note := strings.TrimSpace(in.Note)
	if note == "" {
		note = NotePartialPayment
		if kind == entities.PaymentKindFull {
			note = NoteFullPayment
		}
	}

	out := o.Clone()
	out.Payments = append(make([]entities.Payment, 0, len(o.Payments)+1), o.Payments...)
	out.Payments = append(out.Payments, entities.Payment{
		ID:     newID(),
		Date:   now,
		Amount: in.Amount,
		Method: method,
		Kind:   kind,
		Note:   note,
	})
	out.IsPaid = IsPaid(Balance(out))
	return out, nil
}

type OrderDraft struct {
	ClientID              string
	VehicleID             string
	Description           string
	ServicePerformedNotes string
	Miles                 string
	Items                 []entities.LineItem
	ApplyIVU              bool
	Inspection            entities.Inspection
}

// NewOrder builds a freshly received order with its totals fixed from the
// draft items and an empty payment ledger.
func NewOrder(d OrderDraft, now time.Time, id string) entities.ServiceOrder {
	items := make([]entities.LineItem, len(d.Items))
	copy(items, d.Items)
	totals := ComputeTotals(items, d.ApplyIVU)
	return entities.ServiceOrder{
		ID:                    id,
		VehicleID:             d.VehicleID,
		ClientID:              d.ClientID,
		Description:           strings.TrimSpace(d.Description),
		ServicePerformedNotes: strings.TrimSpace(d.ServicePerformedNotes),
		Status:                entities.StatusRecibido,
		EntryDate:             now,
		Miles:                 strings.TrimSpace(d.Miles),
		Items:                 items,
		Subtotal:              totals.Subtotal,
		Tax:                   totals.Tax,
		Total:                 totals.Total,
		ApplyIVU:              d.ApplyIVU,
		Inspection:            d.Inspection,
		Payments:              []entities.Payment{},
		IsPaid:                false,
	}
}

// Reprice replaces the items and recomputes totals and IsPaid against the
// existing ledger.
func Reprice(o entities.ServiceOrder, items []entities.LineItem, applyIVU bool) entities.ServiceOrder {
	out := o.Clone()
	out.Items = make([]entities.LineItem, len(items))
	copy(out.Items, items)
	totals := ComputeTotals(out.Items, applyIVU)
	out.Subtotal, out.Tax, out.Total = totals.Subtotal, totals.Tax, totals.Total
	out.ApplyIVU = applyIVU
	out.IsPaid = IsPaid(Balance(out))
	return out
}
