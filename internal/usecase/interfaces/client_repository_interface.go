package interfaces

import (
	"context"
	"taller_jaison/internal/domain/entities"
)

// IClientRepository abstracts the client collection ("jaison_clients").
//
// GetByID returns a zero Client (empty ID) when the id is unknown.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}
