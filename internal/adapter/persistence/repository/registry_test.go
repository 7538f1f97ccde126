package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"taller_jaison/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type memoryStore struct {
	mu      sync.Mutex
	docs    map[string][]byte
	saves   int
	failOn  string
	loadErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: map[string][]byte{}}
}

func (m *memoryStore) LoadDocument(_ context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.docs[name], nil
}

func (m *memoryStore) SaveDocument(_ context.Context, name string, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if name == m.failOn {
		return errors.New("write failed")
	}
	m.docs[name] = append([]byte(nil), doc...)
	m.saves++
	return nil
}

func TestRegistry_LoadDefaults(t *testing.T) {
	reg := NewRegistry(newMemoryStore(), nil)
	if err := reg.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clients, _ := reg.Clients().List(context.Background())
	orders, _ := reg.Orders().List(context.Background())
	if len(clients) != 0 || len(orders) != 0 {
		t.Fatalf("expected empty collections, got %d/%d", len(clients), len(orders))
	}
	if reg.Dirty() {
		t.Fatalf("freshly loaded registry must not be dirty")
	}
}

func TestRegistry_LoadCorrupt(t *testing.T) {
	store := newMemoryStore()
	store.docs[CollectionOrders] = []byte("{not json")
	err := NewRegistry(store, nil).Load(context.Background())
	if !errors.Is(err, ErrCorruptCollection) {
		t.Fatalf("expected ErrCorruptCollection, got %v", err)
	}

	store = newMemoryStore()
	store.loadErr = errors.New("unreachable")
	if err := NewRegistry(store, nil).Load(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestRegistry_FlushAndReload(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	reg := NewRegistry(store, nil)

	client := entities.Client{ID: "cli_1", Name: "José Peña", Garage: []entities.Vehicle{{ID: "veh_1", Plate: "ABC-123"}}}
	if _, err := reg.Clients().Create(ctx, client); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, id := range []string{"ord_1", "ord_2"} {
		o := entities.ServiceOrder{ID: id, ClientID: "cli_1", VehicleID: "veh_1", Status: entities.StatusRecibido, Total: decimal.RequireFromString("50.175"), Payments: []entities.Payment{}}
		if _, err := reg.Orders().Create(ctx, o); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if !reg.Dirty() {
		t.Fatalf("expected dirty registry")
	}
	if err := reg.Flush(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.saves != 2 || reg.Dirty() {
		t.Fatalf("expected both documents saved once, got %d saves", store.saves)
	}
	if err := reg.Flush(ctx); err != nil || store.saves != 2 {
		t.Fatalf("expected clean flush to be a no-op, saves=%d err=%v", store.saves, err)
	}

	reloaded := NewRegistry(store, nil)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	orders, _ := reloaded.Orders().List(ctx)
	if len(orders) != 2 || orders[0].ID != "ord_2" || orders[1].ID != "ord_1" {
		t.Fatalf("expected newest first, got %+v", orders)
	}
	if !orders[0].Total.Equal(decimal.RequireFromString("50.175")) {
		t.Fatalf("expected exact total, got %s", orders[0].Total)
	}
	c, _ := reloaded.Clients().GetByID(ctx, "cli_1")
	if c.Name != "José Peña" || len(c.Garage) != 1 {
		t.Fatalf("unexpected client: %+v", c)
	}
}

func TestRegistry_FlushFailureKeepsDirty(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	store.failOn = CollectionOrders
	reg := NewRegistry(store, nil)
	_, _ = reg.Clients().Create(ctx, entities.Client{ID: "cli_1"})

	if err := reg.Flush(ctx); err == nil {
		t.Fatalf("expected flush error")
	}
	if !reg.Dirty() {
		t.Fatalf("failed flush must leave the registry dirty")
	}
	store.failOn = ""
	if err := reg.Flush(ctx); err != nil || reg.Dirty() {
		t.Fatalf("expected retry to succeed, err=%v", err)
	}
}

func TestClientRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistry(newMemoryStore(), nil).Clients()

	c := entities.Client{ID: "cli_1", Name: "Ana", Garage: []entities.Vehicle{}}
	if _, err := repo.Create(ctx, c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Create(ctx, c); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	got, _ := repo.GetByID(ctx, "cli_1")
	got.Garage = append(got.Garage, entities.Vehicle{ID: "veh_x"})
	again, _ := repo.GetByID(ctx, "cli_1")
	if len(again.Garage) != 0 {
		t.Fatalf("returned clients must not alias the stored garage")
	}

	if _, err := repo.Update(ctx, got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, _ = repo.GetByID(ctx, "cli_1")
	if len(again.Garage) != 1 {
		t.Fatalf("expected updated garage, got %+v", again.Garage)
	}

	missing, err := repo.Update(ctx, entities.Client{ID: "cli_404"})
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero client for unknown id, got %+v err=%v", missing, err)
	}
	if none, _ := repo.GetByID(ctx, "cli_404"); none.ID != "" {
		t.Fatalf("expected zero client, got %+v", none)
	}
}

func TestServiceOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistry(newMemoryStore(), nil).Orders()

	_, _ = repo.Create(ctx, entities.ServiceOrder{ID: "ord_1"})
	_, _ = repo.Create(ctx, entities.ServiceOrder{ID: "ord_2"})
	if _, err := repo.Create(ctx, entities.ServiceOrder{ID: "ord_1"}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	updated, err := repo.Update(ctx, entities.ServiceOrder{ID: "ord_1", Status: entities.StatusListo})
	if err != nil || updated.Status != entities.StatusListo {
		t.Fatalf("unexpected update: %+v err=%v", updated, err)
	}
	if missing, _ := repo.Update(ctx, entities.ServiceOrder{ID: "ord_9"}); missing.ID != "" {
		t.Fatalf("expected zero order for unknown id")
	}

	removed, err := repo.Delete(ctx, "ord_2")
	if err != nil || !removed {
		t.Fatalf("expected delete, got %v err=%v", removed, err)
	}
	if removed, _ := repo.Delete(ctx, "ord_2"); removed {
		t.Fatalf("second delete must report nothing removed")
	}
	list, _ := repo.List(ctx)
	if len(list) != 1 || list[0].ID != "ord_1" || list[0].Status != entities.StatusListo {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestRegistry_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(newMemoryStore(), nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = reg.Orders().Create(ctx, entities.ServiceOrder{ID: entities.NewID(entities.PrefixOrder)})
			_ = reg.Flush(ctx)
		}()
	}
	wg.Wait()
	list, _ := reg.Orders().List(ctx)
	if len(list) != 50 {
		t.Fatalf("expected 50 orders, got %d", len(list))
	}
	if err := reg.Flush(ctx); err != nil || reg.Dirty() {
		t.Fatalf("expected clean registry after final flush, err=%v", err)
	}
}
