package entities

import (
	"fmt"
	"strings"
)

// InspectionPart is one checkable body/accessory position of the intake walk-around.
type InspectionPart struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Damaged bool   `json:"damaged"`
}

// Inspection is the damage report captured once, when the order is created.
// It keeps only the parts that were marked damaged at intake time.
type Inspection struct {
	Parts []InspectionPart `json:"parts"`
	Notes string           `json:"notes"`
}

var inspectionCatalog = []string{
	"Bonete", "Foco delantero Izq", "Foco delantero Der", "Foglight frontal Izq", "Foglight delantero Der",
	"Whipers", "Bumper Delantero", "Guardalodo del. Der", "Guardalodo del. Izq",
	"Goma delantera Der", "Goma delantera Izq", "Cristal frontal", "Puerta frontal Izq", "Puerta frontal Der",
	"Ventana frontal Izq", "Ventana frontal Der", "Retrovisor Izq", "Retrovisor Der",
	"Capota", "Sunroof", "Spoiler", "Antena", "Panel trasero Izq", "Panel trasero Der",
	"Puerta trasera Izq", "Puerta trasera Der", "Ventana trasera Izq", "Ventana trasera Der",
	"Baúl", "Puerta de baúl", "Foco de Stop Der", "Foco de Stop Izq", "Luces de Reversa",
	"Bumper trasero", "Muffler", "Cámara de Reversa", "Tablilla",
}

// DefaultInspectionParts returns a fresh copy of the fixed catalog that seeds
// every new inspection. Catalog ids are stable: part_<index>.
func DefaultInspectionParts() []InspectionPart {
	parts := make([]InspectionPart, len(inspectionCatalog))
	for i, label := range inspectionCatalog {
		parts[i] = InspectionPart{ID: fmt.Sprintf("part_%d", i), Label: label}
	}
	return parts
}

// NewManualInspectionPart builds an ad-hoc part that is not in the catalog.
// Manual parts are only added to flag damage, so they start damaged.
func NewManualInspectionPart(label string) (InspectionPart, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return InspectionPart{}, ErrInvalidInspectionPart
	}
	return InspectionPart{ID: NewID(PrefixManualPart), Label: label, Damaged: true}, nil
}

// MarkDamaged flags the catalog/manual parts whose ids are listed.
// Unknown ids yield ErrInvalidInspectionPart.
func MarkDamaged(parts []InspectionPart, ids []string) ([]InspectionPart, error) {
	index := make(map[string]int, len(parts))
	out := make([]InspectionPart, len(parts))
	for i, p := range parts {
		out[i] = p
		index[p.ID] = i
	}
	for _, id := range ids {
		i, ok := index[strings.TrimSpace(id)]
		if !ok {
			return nil, fmt.Errorf("%w: unknown part %q", ErrInvalidInspectionPart, id)
		}
		out[i].Damaged = true
	}
	return out, nil
}

// NewInspection snapshots the damaged subset of a checklist.
func NewInspection(parts []InspectionPart, notes string) Inspection {
	damaged := make([]InspectionPart, 0, len(parts))
	for _, p := range parts {
		if p.Damaged {
			damaged = append(damaged, p)
		}
	}
	return Inspection{Parts: damaged, Notes: strings.TrimSpace(notes)}
}
