package entities

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

// IDPrefix identifies the entity type encoded in a generated identifier.
type IDPrefix string

const (
	PrefixClient     IDPrefix = "cli"
	PrefixVehicle    IDPrefix = "veh"
	PrefixOrder      IDPrefix = "ord"
	PrefixPayment    IDPrefix = "pay"
	PrefixManualPart IDPrefix = "mpart"
)

// NewID generates a K-sortable (UUIDv7-based), globally unique identifier in
// the format "prefix_suffix". Two calls within the same clock tick never collide.
//
// It panics if prefix is not a valid TypeID prefix (programming error).
func NewID(prefix IDPrefix) string {
	tid, err := typeid.Generate(string(prefix))
	if err != nil {
		panic(fmt.Sprintf("entities: invalid id prefix %q: %v", prefix, err))
	}
	return tid.String()
}
