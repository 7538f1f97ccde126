package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"taller_jaison/internal/domain/entities"

	"go.uber.org/zap"
)

var (
	ErrCorruptCollection = errors.New("stored collection is not valid json")
	ErrDuplicateID       = errors.New("an entity with this id already exists")
)

// Registry keeps both collections in memory and writes them back to a
// DocumentStore on Flush. Orders are kept newest first.
//
// Reads and writes of the in-memory collections are guarded by mu. Flushes
// are serialized by flushMu so an older snapshot never overwrites a newer one.
type Registry struct {
	store  DocumentStore
	logger *zap.Logger

	mu      sync.RWMutex
	clients []entities.Client
	orders  []entities.ServiceOrder
	version uint64

	flushMu sync.Mutex
	flushed uint64
}

func NewRegistry(store DocumentStore, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		store:   store,
		logger:  logger,
		clients: []entities.Client{},
		orders:  []entities.ServiceOrder{},
	}
}

// Load replaces the in-memory collections with the stored ones. A collection
// that was never saved loads as empty.
func (r *Registry) Load(ctx context.Context) error {
	clients, err := loadCollection[entities.Client](ctx, r.store, CollectionClients)
	if err != nil {
		return err
	}
	orders, err := loadCollection[entities.ServiceOrder](ctx, r.store, CollectionOrders)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.clients, r.orders = clients, orders
	r.version++
	loaded := r.version
	r.mu.Unlock()

	r.flushMu.Lock()
	r.flushed = loaded
	r.flushMu.Unlock()

	r.logger.Info("[registry][repository] loaded", zap.Int("clients", len(clients)), zap.Int("orders", len(orders)))
	return nil
}

func loadCollection[T any](ctx context.Context, store DocumentStore, name string) ([]T, error) {
	raw, err := store.LoadDocument(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	out := []T{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptCollection, name, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Flush writes both collections when anything changed since the last
// successful flush. It is not transactional with the in-memory commit.
func (r *Registry) Flush(ctx context.Context) error {
	r.flushMu.Lock()
	defer r.flushMu.Unlock()

	r.mu.RLock()
	version := r.version
	if version == r.flushed {
		r.mu.RUnlock()
		return nil
	}
	clientsDoc, err := json.Marshal(r.clients)
	if err != nil {
		r.mu.RUnlock()
		return fmt.Errorf("encode %s: %w", CollectionClients, err)
	}
	ordersDoc, err := json.Marshal(r.orders)
	r.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode %s: %w", CollectionOrders, err)
	}

	if err := r.store.SaveDocument(ctx, CollectionClients, clientsDoc); err != nil {
		return fmt.Errorf("save %s: %w", CollectionClients, err)
	}
	if err := r.store.SaveDocument(ctx, CollectionOrders, ordersDoc); err != nil {
		return fmt.Errorf("save %s: %w", CollectionOrders, err)
	}
	r.flushed = version
	r.logger.Debug("[registry][repository] flushed", zap.Uint64("version", version), zap.Int("clients_bytes", len(clientsDoc)), zap.Int("orders_bytes", len(ordersDoc)))
	return nil
}

// Dirty reports whether there are commits not yet flushed.
func (r *Registry) Dirty() bool {
	r.flushMu.Lock()
	defer r.flushMu.Unlock()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version != r.flushed
}

// Clients returns the client collection view.
func (r *Registry) Clients() *ClientRepository {
	return &ClientRepository{reg: r}
}

// Orders returns the order collection view.
func (r *Registry) Orders() *ServiceOrderRepository {
	return &ServiceOrderRepository{reg: r}
}
