package repository

import "context"

const (
	CollectionClients = "jaison_clients"
	CollectionOrders  = "jaison_orders"
)

// DocumentStore persists each collection as one JSON document.
//
// LoadDocument returns (nil, nil) when the collection was never saved.
// SaveDocument replaces the whole document.
type DocumentStore interface {
	LoadDocument(ctx context.Context, name string) ([]byte, error)
	SaveDocument(ctx context.Context, name string, doc []byte) error
}
