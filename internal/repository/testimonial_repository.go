package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tkstudio/site-backend/internal/model"
	"github.com/tkstudio/site-backend/internal/store"
)

type TestimonialRepository struct {
	store store.Store
}

func NewTestimonialRepository(s store.Store) *TestimonialRepository {
	return &TestimonialRepository{store: s}
}

func (r *TestimonialRepository) Create(ctx context.Context, tm *model.Testimonial) error {
	return r.store.Insert(ctx, store.CollectionTestimonials, tm.ID, tm.CreatedAt, tm)
}

func (r *TestimonialRepository) List(ctx context.Context) ([]model.Testimonial, error) {
	docs, err := r.store.Find(ctx, store.CollectionTestimonials, nil,
		store.FindOptions{SortByCreatedAtDesc: true})
	if err != nil {
		return nil, err
	}

	testimonials := make([]model.Testimonial, 0, len(docs))
	for _, doc := range docs {
		var tm model.Testimonial
		if err := json.Unmarshal(doc, &tm); err != nil {
			return nil, fmt.Errorf("unmarshal testimonial: %w", err)
		}
		testimonials = append(testimonials, tm)
	}
	return testimonials, nil
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id string) (*model.Testimonial, error) {
	data, err := r.store.FindOne(ctx, store.CollectionTestimonials, store.Filter{"id": id})
	if err != nil {
		return nil, err
	}

	var tm model.Testimonial
	if err := json.Unmarshal(data, &tm); err != nil {
		return nil, fmt.Errorf("unmarshal testimonial: %w", err)
	}
	return &tm, nil
}

func (r *TestimonialRepository) Update(ctx context.Context, id string, fields map[string]any) (*model.Testimonial, error) {
	if err := r.store.Update(ctx, store.CollectionTestimonials, id, fields); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionTestimonials, id)
}
