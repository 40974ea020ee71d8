package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tkstudio/site-backend/internal/model"
	"github.com/tkstudio/site-backend/internal/store"
)

type InquiryRepository struct {
	store store.Store
}

func NewInquiryRepository(s store.Store) *InquiryRepository {
	return &InquiryRepository{store: s}
}

func (r *InquiryRepository) Create(ctx context.Context, inq *model.Inquiry) error {
	return r.store.Insert(ctx, store.CollectionInquiries, inq.ID, inq.CreatedAt, inq)
}

func (r *InquiryRepository) List(ctx context.Context, filter store.Filter) ([]model.Inquiry, error) {
	docs, err := r.store.Find(ctx, store.CollectionInquiries, filter,
		store.FindOptions{SortByCreatedAtDesc: true})
	if err != nil {
		return nil, err
	}

	inquiries := make([]model.Inquiry, 0, len(docs))
	for _, doc := range docs {
		var inq model.Inquiry
		if err := json.Unmarshal(doc, &inq); err != nil {
			return nil, fmt.Errorf("unmarshal inquiry: %w", err)
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*model.Inquiry, error) {
	data, err := r.store.FindOne(ctx, store.CollectionInquiries, store.Filter{"id": id})
	if err != nil {
		return nil, err
	}

	var inq model.Inquiry
	if err := json.Unmarshal(data, &inq); err != nil {
		return nil, fmt.Errorf("unmarshal inquiry: %w", err)
	}
	return &inq, nil
}

// SetStatus overwrites the status field only.
func (r *InquiryRepository) SetStatus(ctx context.Context, id, status string) error {
	return r.store.Update(ctx, store.CollectionInquiries, id, map[string]any{"status": status})
}

func (r *InquiryRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionInquiries, id)
}
