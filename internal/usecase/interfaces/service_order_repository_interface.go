package interfaces

import (
	"context"
	"taller_jaison/internal/domain/entities"
)

// IServiceOrderRepository abstracts the order collection ("jaison_orders").
//
// The collection is kept newest first: Create prepends. GetByID returns a
// zero ServiceOrder (empty ID) when the id is unknown, and Delete reports
// whether anything was removed.
type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
}
