package entities

import (
	"errors"
	"testing"
)

func TestServiceOrder_SetStatusAcceptsEveryTransition(t *testing.T) {
	for _, from := range AllStatuses() {
		for _, to := range AllStatuses() {
			o := ServiceOrder{Status: from}
			if err := o.SetStatus(to); err != nil {
				t.Fatalf("expected %s -> %s to be accepted, got %v", from, to, err)
			}
			if o.Status != to {
				t.Fatalf("expected status %s, got %s", to, o.Status)
			}
		}
	}
}

func TestServiceOrder_SetStatusRejectsUnknown(t *testing.T) {
	o := ServiceOrder{Status: StatusReparacion}
	err := o.SetStatus(ServiceStatus("perdido"))
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if o.Status != StatusReparacion {
		t.Fatalf("expected status unchanged, got %s", o.Status)
	}
}

func TestParseServiceStatus(t *testing.T) {
	got, err := ParseServiceStatus(" Listo ")
	if err != nil || got != StatusListo {
		t.Fatalf("expected listo, got %q err=%v", got, err)
	}
	if _, err := ParseServiceStatus(""); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestServiceStatus_LabelsAndActivity(t *testing.T) {
	if StatusDiagnostico.Label() != "En Diagnóstico" {
		t.Fatalf("unexpected label %q", StatusDiagnostico.Label())
	}
	if ServiceStatus("x").Label() != "Recibido" {
		t.Fatalf("expected fallback label")
	}
	if StatusListo.IsActive() || StatusEntregado.IsActive() {
		t.Fatalf("ready/delivered orders must not be active")
	}
	if !StatusEsperaRepuestos.IsActive() {
		t.Fatalf("awaiting parts must be active")
	}
	if len(AllStatuses()) != 6 || AllStatuses()[0] != StatusRecibido || AllStatuses()[5] != StatusEntregado {
		t.Fatalf("unexpected pipeline %v", AllStatuses())
	}
}
