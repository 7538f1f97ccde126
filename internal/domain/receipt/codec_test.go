package receipt

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"taller_jaison/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func sampleSnapshot() Snapshot {
	entry := time.Date(2026, 4, 2, 13, 30, 0, 0, time.UTC)
	return Snapshot{
		Order: entities.ServiceOrder{
			ID:          "ord_01",
			ClientID:    "cli_01",
			VehicleID:   "veh_01",
			Description: "Ruido en el tren delantero, señal de frenos",
			Status:      entities.StatusReparacion,
			EntryDate:   entry,
			Miles:       "84500",
			Items: []entities.LineItem{
				{Description: "Pastillas de freno", Price: decimal.RequireFromString("45.00")},
			},
			Subtotal: decimal.RequireFromString("45"),
			Tax:      decimal.RequireFromString("5.175"),
			Total:    decimal.RequireFromString("50.175"),
			ApplyIVU: true,
			Inspection: entities.Inspection{
				Parts: []entities.InspectionPart{{ID: "part_0", Label: "Bonete", Damaged: true}},
				Notes: "rayón en bonete",
			},
			Payments: []entities.Payment{{
				ID:     "pay_01",
				Date:   entry.Add(time.Hour),
				Amount: decimal.RequireFromString("30"),
				Method: entities.PaymentMethodAthMovil,
				Kind:   entities.PaymentKindPartial,
				Note:   "Abono",
			}},
		},
		Client: entities.Client{
			ID:    "cli_01",
			Name:  "José Peña Muñoz",
			Phone: "(787) 555-1234",
			Garage: []entities.Vehicle{
				{ID: "veh_01", Plate: "ABC-123", Brand: "Toyota", Model: "Corolla", Year: "2019", Color: "Gris"},
			},
		},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	s := sampleSnapshot()
	token, err := Encode(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !regexp.MustCompile(`^[A-Za-z0-9_-]+$`).MatchString(token) {
		t.Fatalf("token contains non url-safe characters: %s", token)
	}

	got, err := Decode(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Client.Name != "José Peña Muñoz" || got.Order.Description != s.Order.Description {
		t.Fatalf("multi-byte text changed: %q / %q", got.Client.Name, got.Order.Description)
	}
	if !got.Order.Total.Equal(s.Order.Total) || !got.Order.Payments[0].Amount.Equal(decimal.RequireFromString("30")) {
		t.Fatalf("amounts changed: %s", got.Order.Total)
	}
	again, err := Encode(got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != token {
		t.Fatalf("expected decode(encode(s)) to re-encode identically")
	}
}

func TestEncode_RequiresIDs(t *testing.T) {
	s := sampleSnapshot()
	s.Client.ID = ""
	if _, err := Encode(s); !errors.Is(err, ErrIncompleteSnapshot) {
		t.Fatalf("expected ErrIncompleteSnapshot, got %v", err)
	}
}

func TestDecode_Rejects(t *testing.T) {
	token, err := Encode(sampleSnapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	enc := func(raw string) string { return base64.RawURLEncoding.EncodeToString([]byte(raw)) }

	t.Run("empty token", func(t *testing.T) {
		if _, err := Decode("  "); !errors.Is(err, ErrMissingReceiptToken) {
			t.Fatalf("expected ErrMissingReceiptToken, got %v", err)
		}
	})

	invalid := map[string]string{
		"truncated":       token[:len(token)/2],
		"garbage":         "%%%not-base64%%%",
		"not json":        enc("hola"),
		"unknown field":   enc(`{"order":{"id":"o"},"client":{"id":"c"},"extra":true}`),
		"trailing data":   enc(`{"order":{"id":"o"},"client":{"id":"c"}}{}`),
		"missing order":   enc(`{"client":{"id":"c"}}`),
		"missing client":  enc(`{"order":{"id":"o"}}`),
		"wrong shape":     enc(`[1,2,3]`),
		"foreign client":  enc(`{"order":{"id":"o","clientId":"x"},"client":{"id":"c"}}`),
		"invalid utf8":    base64.RawURLEncoding.EncodeToString([]byte{0xff, 0xfe, '{'}),
		"bad amount type": enc(`{"order":{"id":"o","total":true},"client":{"id":"c"}}`),
	}
	for name, tok := range invalid {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(tok); !errors.Is(err, ErrInvalidReceiptToken) {
				t.Fatalf("expected ErrInvalidReceiptToken, got %v", err)
			}
		})
	}
}

func TestDecode_AcceptsStandardAlphabetLinks(t *testing.T) {
	raw, err := json.Marshal(sampleSnapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	legacy := base64.StdEncoding.EncodeToString(raw)
	if !strings.ContainsAny(legacy, "+/=") {
		t.Skip("sample does not exercise the standard alphabet")
	}
	got, err := Decode(legacy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Order.ID != "ord_01" {
		t.Fatalf("unexpected order id %q", got.Order.ID)
	}
}
