package entities

import "strings"

// ServiceStatus is the lifecycle stage of a service order.
//
// The enumeration is ordered to suggest the shop pipeline
// (recibido -> diagnostico -> espera_repuestos -> reparacion -> listo -> entregado)
// but no transition graph is enforced: any member may follow any other.
type ServiceStatus string

const (
	StatusRecibido        ServiceStatus = "recibido"
	StatusDiagnostico     ServiceStatus = "diagnostico"
	StatusEsperaRepuestos ServiceStatus = "espera_repuestos"
	StatusReparacion      ServiceStatus = "reparacion"
	StatusListo           ServiceStatus = "listo"
	StatusEntregado       ServiceStatus = "entregado"
)

var statusPipeline = []ServiceStatus{
	StatusRecibido,
	StatusDiagnostico,
	StatusEsperaRepuestos,
	StatusReparacion,
	StatusListo,
	StatusEntregado,
}

var statusLabels = map[ServiceStatus]string{
	StatusRecibido:        "Recibido",
	StatusDiagnostico:     "En Diagnóstico",
	StatusEsperaRepuestos: "Repuestos",
	StatusReparacion:      "En Reparación",
	StatusListo:           "Listo",
	StatusEntregado:       "Entregado",
}

// AllStatuses returns the enumeration in pipeline order.
func AllStatuses() []ServiceStatus {
	out := make([]ServiceStatus, len(statusPipeline))
	copy(out, statusPipeline)
	return out
}

func ParseServiceStatus(raw string) (ServiceStatus, error) {
	s := ServiceStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s ServiceStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display label, falling back to the "recibido" label for
// values outside the enumeration.
func (s ServiceStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return statusLabels[StatusRecibido]
}

// IsActive reports whether the order is still being worked on (not ready, not delivered).
func (s ServiceStatus) IsActive() bool {
	return s != StatusListo && s != StatusEntregado
}
