package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tkstudio/site-backend/internal/model"
	"github.com/tkstudio/site-backend/internal/store"
)

type PortfolioRepository struct {
	store store.Store
}

func NewPortfolioRepository(s store.Store) *PortfolioRepository {
	return &PortfolioRepository{store: s}
}

func (r *PortfolioRepository) Create(ctx context.Context, item *model.PortfolioItem) error {
	return r.store.Insert(ctx, store.CollectionPortfolio, item.ID, item.CreatedAt, item)
}

func (r *PortfolioRepository) List(ctx context.Context, filter store.Filter) ([]model.PortfolioItem, error) {
	docs, err := r.store.Find(ctx, store.CollectionPortfolio, filter,
		store.FindOptions{SortByCreatedAtDesc: true})
	if err != nil {
		return nil, err
	}

	items := make([]model.PortfolioItem, 0, len(docs))
	for _, doc := range docs {
		var item model.PortfolioItem
		if err := json.Unmarshal(doc, &item); err != nil {
			return nil, fmt.Errorf("unmarshal portfolio item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PortfolioRepository) GetByID(ctx context.Context, id string) (*model.PortfolioItem, error) {
	data, err := r.store.FindOne(ctx, store.CollectionPortfolio, store.Filter{"id": id})
	if err != nil {
		return nil, err
	}

	var item model.PortfolioItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("unmarshal portfolio item: %w", err)
	}
	return &item, nil
}

// Update merges fields into the stored document and returns the post-update
// record.
func (r *PortfolioRepository) Update(ctx context.Context, id string, fields map[string]any) (*model.PortfolioItem, error) {
	if err := r.store.Update(ctx, store.CollectionPortfolio, id, fields); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *PortfolioRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionPortfolio, id)
}
