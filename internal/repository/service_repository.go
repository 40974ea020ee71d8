package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tkstudio/site-backend/internal/model"
	"github.com/tkstudio/site-backend/internal/store"
)

type ServiceRepository struct {
	store store.Store
}

func NewServiceRepository(s store.Store) *ServiceRepository {
	return &ServiceRepository{store: s}
}

func (r *ServiceRepository) Create(ctx context.Context, svc *model.Service) error {
	return r.store.Insert(ctx, store.CollectionServices, svc.ID, svc.CreatedAt, svc)
}

// List returns services in store-default order; the services page orders
// them client-side.
func (r *ServiceRepository) List(ctx context.Context, filter store.Filter) ([]model.Service, error) {
	docs, err := r.store.Find(ctx, store.CollectionServices, filter, store.FindOptions{})
	if err != nil {
		return nil, err
	}

	services := make([]model.Service, 0, len(docs))
	for _, doc := range docs {
		var svc model.Service
		if err := json.Unmarshal(doc, &svc); err != nil {
			return nil, fmt.Errorf("unmarshal service: %w", err)
		}
		services = append(services, svc)
	}
	return services, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*model.Service, error) {
	data, err := r.store.FindOne(ctx, store.CollectionServices, store.Filter{"id": id})
	if err != nil {
		return nil, err
	}

	var svc model.Service
	if err := json.Unmarshal(data, &svc); err != nil {
		return nil, fmt.Errorf("unmarshal service: %w", err)
	}
	return &svc, nil
}

func (r *ServiceRepository) Update(ctx context.Context, id string, fields map[string]any) (*model.Service, error) {
	if err := r.store.Update(ctx, store.CollectionServices, id, fields); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionServices, id)
}
