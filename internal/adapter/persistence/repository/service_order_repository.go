package repository

import (
	"context"

	"taller_jaison/internal/domain/entities"
	"taller_jaison/internal/usecase/interfaces"
)

// ServiceOrderRepository is the "jaison_orders" view of a Registry.
type ServiceOrderRepository struct {
	reg *Registry
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderRepository)(nil)

// Create prepends the order so the collection stays newest first.
func (r *ServiceOrderRepository) Create(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.reg.mu.Lock()
	defer r.reg.mu.Unlock()
	for _, existing := range r.reg.orders {
		if existing.ID == o.ID {
			return entities.ServiceOrder{}, ErrDuplicateID
		}
	}
	orders := make([]entities.ServiceOrder, 0, len(r.reg.orders)+1)
	orders = append(orders, o.Clone())
	r.reg.orders = append(orders, r.reg.orders...)
	r.reg.version++
	return o.Clone(), nil
}

func (r *ServiceOrderRepository) Update(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.reg.mu.Lock()
	defer r.reg.mu.Unlock()
	for i := range r.reg.orders {
		if r.reg.orders[i].ID == o.ID {
			r.reg.orders[i] = o.Clone()
			r.reg.version++
			return o.Clone(), nil
		}
	}
	return entities.ServiceOrder{}, nil
}

func (r *ServiceOrderRepository) GetByID(_ context.Context, id string) (entities.ServiceOrder, error) {
	r.reg.mu.RLock()
	defer r.reg.mu.RUnlock()
	for _, o := range r.reg.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return entities.ServiceOrder{}, nil
}

// Delete removes the order outright; there is no tombstone.
func (r *ServiceOrderRepository) Delete(_ context.Context, id string) (bool, error) {
	r.reg.mu.Lock()
	defer r.reg.mu.Unlock()
	for i := range r.reg.orders {
		if r.reg.orders[i].ID == id {
			orders := make([]entities.ServiceOrder, 0, len(r.reg.orders)-1)
			orders = append(orders, r.reg.orders[:i]...)
			r.reg.orders = append(orders, r.reg.orders[i+1:]...)
			r.reg.version++
			return true, nil
		}
	}
	return false, nil
}

func (r *ServiceOrderRepository) List(_ context.Context) ([]entities.ServiceOrder, error) {
	r.reg.mu.RLock()
	defer r.reg.mu.RUnlock()
	out := make([]entities.ServiceOrder, len(r.reg.orders))
	for i, o := range r.reg.orders {
		out[i] = o.Clone()
	}
	return out, nil
}
