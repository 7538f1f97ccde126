package usecase

import (
	"context"
	"strings"

	"taller_jaison/internal/domain/entities"
	"taller_jaison/internal/usecase/interfaces"
)

// IClientUseCase exposes the client registry to the intake screen.
type IClientUseCase interface {
	Search(ctx context.Context, query string) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Search matches the query against the client name (case-insensitive) or
// phone. A blank query matches nothing.
func (u *ClientUseCase) Search(ctx context.Context, query string) ([]entities.Client, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []entities.Client{}, nil
	}
	clients, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0)
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.Phone, q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}
