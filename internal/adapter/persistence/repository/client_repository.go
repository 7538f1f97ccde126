package repository

import (
	"context"

	"taller_jaison/internal/domain/entities"
	"taller_jaison/internal/usecase/interfaces"
)

// ClientRepository is the "jaison_clients" view of a Registry.
type ClientRepository struct {
	reg *Registry
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func (r *ClientRepository) Create(_ context.Context, c entities.Client) (entities.Client, error) {
	r.reg.mu.Lock()
	defer r.reg.mu.Unlock()
	for _, existing := range r.reg.clients {
		if existing.ID == c.ID {
			return entities.Client{}, ErrDuplicateID
		}
	}
	r.reg.clients = append(r.reg.clients, c.Clone())
	r.reg.version++
	return c.Clone(), nil
}

// Update replaces the stored client. It returns a zero Client when the id is unknown.
func (r *ClientRepository) Update(_ context.Context, c entities.Client) (entities.Client, error) {
	r.reg.mu.Lock()
	defer r.reg.mu.Unlock()
	for i := range r.reg.clients {
		if r.reg.clients[i].ID == c.ID {
			r.reg.clients[i] = c.Clone()
			r.reg.version++
			return c.Clone(), nil
		}
	}
	return entities.Client{}, nil
}

func (r *ClientRepository) GetByID(_ context.Context, id string) (entities.Client, error) {
	r.reg.mu.RLock()
	defer r.reg.mu.RUnlock()
	for _, c := range r.reg.clients {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return entities.Client{}, nil
}

func (r *ClientRepository) List(_ context.Context) ([]entities.Client, error) {
	r.reg.mu.RLock()
	defer r.reg.mu.RUnlock()
	out := make([]entities.Client, len(r.reg.clients))
	for i, c := range r.reg.clients {
		out[i] = c.Clone()
	}
	return out, nil
}
