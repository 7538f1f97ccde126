package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taller_jaison/internal/domain/entities"
	"taller_jaison/internal/domain/ledger"
	"taller_jaison/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound       = errors.New("service order not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidClientID     = errors.New("invalid client id")
	ErrInvalidClientDraft  = errors.New("a client must be selected or a client name given")
	ErrInvalidVehicleDraft = errors.New("a vehicle must be selected or a plate given")
	ErrInvalidOrderFilter  = errors.New("invalid order filter")
)

// OrderFilter selects a dashboard listing.
type OrderFilter string

const (
	// OrderFilterAll lists every order still in the shop (not delivered).
	OrderFilterAll     OrderFilter = "all"
	OrderFilterActive  OrderFilter = "active"
	OrderFilterReady   OrderFilter = "ready"
	OrderFilterHistory OrderFilter = "history"
)

// ParseOrderFilter defaults to the active listing.
func ParseOrderFilter(raw string) (OrderFilter, error) {
	switch f := OrderFilter(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return OrderFilterActive, nil
	case OrderFilterAll, OrderFilterActive, OrderFilterReady, OrderFilterHistory:
		return f, nil
	}
	return "", ErrInvalidOrderFilter
}

func (f OrderFilter) matches(s entities.ServiceStatus) bool {
	switch f {
	case OrderFilterActive:
		return s.IsActive()
	case OrderFilterReady:
		return s == entities.StatusListo
	case OrderFilterHistory:
		return s == entities.StatusEntregado
	default:
		return s != entities.StatusEntregado
	}
}

// RegisterOrderCommand is the full intake: either existing ids or drafts for
// client and vehicle, the order form, the billed items and the inspection.
type RegisterOrderCommand struct {
	ExistingClientID      string
	ClientDraft           entities.ClientDraft
	ExistingVehicleID     string
	VehicleDraft          entities.VehicleDraft
	Description           string
	ServicePerformedNotes string
	Miles                 string
	ApplyIVU              bool
	Items                 []entities.LineItem
	DamagedPartIDs        []string
	ManualParts           []string
	InspectionNotes       string
}

type AddPaymentCommand struct {
	// Amount may be nil for a full payment, in which case the outstanding
	// balance rounded to cents is charged.
	Amount *decimal.Decimal
	Method entities.PaymentMethod
	Kind   entities.PaymentKind
	Note   string
}

// OrderDetails is an order with its references resolved and its ledger
// figures computed.
type OrderDetails struct {
	Order        entities.ServiceOrder
	Client       entities.Client
	ClientFound  bool
	Vehicle      entities.Vehicle
	VehicleFound bool
	TotalPaid    decimal.Decimal
	Balance      decimal.Decimal
	Outstanding  decimal.Decimal
}

type OrderStats struct {
	Active int
	Ready  int
	Total  int
}

// IServiceOrderUseCase drives the order lifecycle and its payment ledger.
//
// Every committed mutation (create, status, notes, payment) is handed to the
// notifier after the repository accepted it.
type IServiceOrderUseCase interface {
	RegisterOrder(ctx context.Context, cmd RegisterOrderCommand) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	GetDetails(ctx context.Context, id string) (OrderDetails, error)
	List(ctx context.Context, filter OrderFilter, search string) ([]OrderDetails, error)
	Stats(ctx context.Context) (OrderStats, error)
	SetStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.ServiceOrder, error)
	UpdateNotes(ctx context.Context, id string, notes string) (entities.ServiceOrder, error)
	AddPayment(ctx context.Context, id string, cmd AddPaymentCommand) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
}

type ServiceOrderUseCase struct {
	orderRepo  interfaces.IServiceOrderRepository
	clientRepo interfaces.IClientRepository
	notifier   interfaces.IOrderNotifier
	logger     *zap.Logger
	locks      *keyedMutex
	now        func() time.Time
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(orderRepo interfaces.IServiceOrderRepository, clientRepo interfaces.IClientRepository, notifier interfaces.IOrderNotifier, logger *zap.Logger) *ServiceOrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceOrderUseCase{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		notifier:   notifier,
		logger:     logger,
		locks:      newKeyedMutex(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *ServiceOrderUseCase) RegisterOrder(ctx context.Context, cmd RegisterOrderCommand) (entities.ServiceOrder, error) {
	existingClientID := strings.TrimSpace(cmd.ExistingClientID)
	existingVehicleID := strings.TrimSpace(cmd.ExistingVehicleID)
	u.logger.Info("[order][usecase] register start",
		zap.String("client_id", existingClientID),
		zap.String("vehicle_id", existingVehicleID),
		zap.Int("items", len(cmd.Items)))

	if existingClientID == "" && cmd.ClientDraft.IsEmpty() {
		return entities.ServiceOrder{}, ErrInvalidClientDraft
	}
	if existingVehicleID == "" && cmd.VehicleDraft.IsEmpty() {
		return entities.ServiceOrder{}, ErrInvalidVehicleDraft
	}

	items := make([]entities.LineItem, 0, len(cmd.Items))
	for _, it := range cmd.Items {
		it.Description = strings.TrimSpace(it.Description)
		if err := it.Validate(); err != nil {
			return entities.ServiceOrder{}, err
		}
		items = append(items, it)
	}

	parts, err := entities.MarkDamaged(entities.DefaultInspectionParts(), cmd.DamagedPartIDs)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	for _, label := range cmd.ManualParts {
		p, err := entities.NewManualInspectionPart(label)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		parts = append(parts, p)
	}
	inspection := entities.NewInspection(parts, cmd.InspectionNotes)

	var existingClient *entities.Client
	if existingClientID != "" {
		defer u.locks.Lock("client:" + existingClientID)()
		c, err := u.clientRepo.GetByID(ctx, existingClientID)
		if err != nil {
			u.logger.Error("[order][usecase] client lookup failed", zap.String("client_id", existingClientID), zap.Error(err))
			return entities.ServiceOrder{}, err
		}
		if c.ID == "" {
			return entities.ServiceOrder{}, ErrClientNotFound
		}
		existingClient = &c
	}
	client := entities.ResolveOrCreateClient(existingClient, cmd.ClientDraft)

	var existingVehicle *entities.Vehicle
	if existingVehicleID != "" {
		v, ok := client.FindVehicle(existingVehicleID)
		if !ok {
			return entities.ServiceOrder{}, ErrVehicleNotFound
		}
		existingVehicle = &v
	}
	client, vehicle := entities.ResolveOrCreateVehicle(client, existingVehicle, cmd.VehicleDraft)

	// the client (and its garage) is persisted before the order that references it
	switch {
	case existingClient == nil:
		if client, err = u.clientRepo.Create(ctx, client); err != nil {
			u.logger.Error("[order][usecase] client create failed", zap.Error(err))
			return entities.ServiceOrder{}, err
		}
		u.logger.Info("[order][usecase] client registered", zap.String("client_id", client.ID))
	case existingVehicle == nil:
		if client, err = u.clientRepo.Update(ctx, client); err != nil {
			u.logger.Error("[order][usecase] client update failed", zap.String("client_id", client.ID), zap.Error(err))
			return entities.ServiceOrder{}, err
		}
		u.logger.Info("[order][usecase] vehicle registered", zap.String("client_id", client.ID), zap.String("vehicle_id", vehicle.ID))
	}

	order := ledger.NewOrder(ledger.OrderDraft{
		ClientID:              client.ID,
		VehicleID:             vehicle.ID,
		Description:           cmd.Description,
		ServicePerformedNotes: cmd.ServicePerformedNotes,
		Miles:                 cmd.Miles,
		Items:                 items,
		ApplyIVU:              cmd.ApplyIVU,
		Inspection:            inspection,
	}, u.now(), entities.NewID(entities.PrefixOrder))

	created, err := u.orderRepo.Create(ctx, order)
	if err != nil {
		u.logger.Error("[order][usecase] order create failed", zap.String("order_id", order.ID), zap.Error(err))
		return entities.ServiceOrder{}, err
	}
	u.logger.Info("[order][usecase] register success",
		zap.String("order_id", created.ID),
		zap.String("total", created.Total.String()))

	u.notify(interfaces.OrderChange{Order: created, Client: client, ClientFound: true, Vehicle: vehicle, VehicleFound: true})
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	o, err := u.orderRepo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) GetDetails(ctx context.Context, id string) (OrderDetails, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return OrderDetails{}, err
	}
	change, err := u.resolve(ctx, o)
	if err != nil {
		return OrderDetails{}, err
	}
	return newOrderDetails(change), nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context, filter OrderFilter, search string) ([]OrderDetails, error) {
	if filter == "" {
		filter = OrderFilterActive
	}
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := u.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}

	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]OrderDetails, 0, len(orders))
	for _, o := range orders {
		if !filter.matches(o.Status) {
			continue
		}
		change := interfaces.OrderChange{Order: o}
		change.Client, change.ClientFound = byID[o.ClientID]
		if change.ClientFound {
			change.Vehicle, change.VehicleFound = change.Client.FindVehicle(o.VehicleID)
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(change.Client.Name), term) &&
			!strings.Contains(strings.ToLower(change.Vehicle.Plate), term) {
			continue
		}
		out = append(out, newOrderDetails(change))
	}
	return out, nil
}

func (u *ServiceOrderUseCase) Stats(ctx context.Context) (OrderStats, error) {
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return OrderStats{}, err
	}
	stats := OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch {
		case o.Status.IsActive():
			stats.Active++
		case o.Status == entities.StatusListo:
			stats.Ready++
		}
	}
	return stats, nil
}

func (u *ServiceOrderUseCase) SetStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.ServiceOrder, error) {
	return u.mutate(ctx, "set-status", id, func(o entities.ServiceOrder) (entities.ServiceOrder, error) {
		if err := o.SetStatus(status); err != nil {
			return entities.ServiceOrder{}, err
		}
		return o, nil
	})
}

func (u *ServiceOrderUseCase) UpdateNotes(ctx context.Context, id string, notes string) (entities.ServiceOrder, error) {
	return u.mutate(ctx, "update-notes", id, func(o entities.ServiceOrder) (entities.ServiceOrder, error) {
		o.ServicePerformedNotes = strings.TrimSpace(notes)
		return o, nil
	})
}

func (u *ServiceOrderUseCase) AddPayment(ctx context.Context, id string, cmd AddPaymentCommand) (entities.ServiceOrder, error) {
	return u.mutate(ctx, "add-payment", id, func(o entities.ServiceOrder) (entities.ServiceOrder, error) {
		in := ledger.PaymentInput{Method: cmd.Method, Kind: cmd.Kind, Note: cmd.Note}
		switch {
		case cmd.Amount != nil:
			in.Amount = *cmd.Amount
		case cmd.Kind == entities.PaymentKindFull:
			in.Amount = ledger.FullPaymentAmount(o)
		}
		return ledger.AddPayment(o, in, u.now(), func() string { return entities.NewID(entities.PrefixPayment) })
	})
}

func (u *ServiceOrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}
	defer u.locks.Lock("order:" + id)()

	removed, err := u.orderRepo.Delete(ctx, id)
	if err != nil {
		u.logger.Error("[order][usecase] delete failed", zap.String("order_id", id), zap.Error(err))
		return err
	}
	if !removed {
		return ErrOrderNotFound
	}
	u.logger.Info("[order][usecase] delete success", zap.String("order_id", id))
	return nil
}

// mutate runs a read-modify-write on one order under its key lock and
// notifies once the repository accepted the new state.
func (u *ServiceOrderUseCase) mutate(ctx context.Context, op, id string, apply func(entities.ServiceOrder) (entities.ServiceOrder, error)) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	defer u.locks.Lock("order:" + id)()

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	next, err := apply(current.Clone())
	if err != nil {
		u.logger.Warn("[order][usecase] rejected", zap.String("op", op), zap.String("order_id", id), zap.Error(err))
		return entities.ServiceOrder{}, err
	}
	updated, err := u.orderRepo.Update(ctx, next)
	if err != nil {
		u.logger.Error("[order][usecase] update failed", zap.String("op", op), zap.String("order_id", id), zap.Error(err))
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	u.logger.Info("[order][usecase] committed",
		zap.String("op", op),
		zap.String("order_id", id),
		zap.String("status", string(updated.Status)),
		zap.Bool("is_paid", updated.IsPaid))

	if change, err := u.resolve(ctx, updated); err == nil {
		u.notify(change)
	} else {
		u.logger.Warn("[order][usecase] notify skipped", zap.String("order_id", id), zap.Error(err))
	}
	return updated, nil
}

func (u *ServiceOrderUseCase) resolve(ctx context.Context, o entities.ServiceOrder) (interfaces.OrderChange, error) {
	change := interfaces.OrderChange{Order: o}
	if o.ClientID == "" {
		return change, nil
	}
	c, err := u.clientRepo.GetByID(ctx, o.ClientID)
	if err != nil {
		return interfaces.OrderChange{}, fmt.Errorf("resolve client %s: %w", o.ClientID, err)
	}
	if c.ID == "" {
		return change, nil
	}
	change.Client, change.ClientFound = c, true
	change.Vehicle, change.VehicleFound = c.FindVehicle(o.VehicleID)
	return change, nil
}

func (u *ServiceOrderUseCase) notify(change interfaces.OrderChange) {
	if u.notifier == nil {
		return
	}
	u.notifier.NotifyOrderChanged(change)
}

func newOrderDetails(change interfaces.OrderChange) OrderDetails {
	return OrderDetails{
		Order:        change.Order,
		Client:       change.Client,
		ClientFound:  change.ClientFound,
		Vehicle:      change.Vehicle,
		VehicleFound: change.VehicleFound,
		TotalPaid:    ledger.TotalPaid(change.Order.Payments),
		Balance:      ledger.Balance(change.Order),
		Outstanding:  ledger.Outstanding(change.Order),
	}
}
