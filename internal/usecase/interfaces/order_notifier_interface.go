package interfaces

import "taller_jaison/internal/domain/entities"

// OrderChange is the committed state of an order after a mutation, with the
// references resolved as well as they could be.
type OrderChange struct {
	Order        entities.ServiceOrder
	Client       entities.Client
	ClientFound  bool
	Vehicle      entities.Vehicle
	VehicleFound bool
}

// IOrderNotifier hands a change to the outbound reporting queue. It must not
// block the caller and never reports delivery failures back.
type IOrderNotifier interface {
	NotifyOrderChanged(change OrderChange)
}
