package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tkstudio/site-backend/internal/model"
	"github.com/tkstudio/site-backend/internal/store"
)

type GalleryRepository struct {
	store store.Store
}

func NewGalleryRepository(s store.Store) *GalleryRepository {
	return &GalleryRepository{store: s}
}

func (r *GalleryRepository) Create(ctx context.Context, image *model.GalleryImage) error {
	return r.store.Insert(ctx, store.CollectionGallery, image.ID, image.CreatedAt, image)
}

func (r *GalleryRepository) List(ctx context.Context, filter store.Filter) ([]model.GalleryImage, error) {
	docs, err := r.store.Find(ctx, store.CollectionGallery, filter,
		store.FindOptions{SortByCreatedAtDesc: true})
	if err != nil {
		return nil, err
	}

	images := make([]model.GalleryImage, 0, len(docs))
	for _, doc := range docs {
		var image model.GalleryImage
		if err := json.Unmarshal(doc, &image); err != nil {
			return nil, fmt.Errorf("unmarshal gallery image: %w", err)
		}
		images = append(images, image)
	}
	return images, nil
}

func (r *GalleryRepository) GetByID(ctx context.Context, id string) (*model.GalleryImage, error) {
	data, err := r.store.FindOne(ctx, store.CollectionGallery, store.Filter{"id": id})
	if err != nil {
		return nil, err
	}

	var image model.GalleryImage
	if err := json.Unmarshal(data, &image); err != nil {
		return nil, fmt.Errorf("unmarshal gallery image: %w", err)
	}
	return &image, nil
}

func (r *GalleryRepository) Update(ctx context.Context, id string, fields map[string]any) (*model.GalleryImage, error) {
	if err := r.store.Update(ctx, store.CollectionGallery, id, fields); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionGallery, id)
}
