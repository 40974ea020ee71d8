package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tkstudio/site-backend/internal/model"
	"github.com/tkstudio/site-backend/internal/store"
)

type BlogRepository struct {
	store store.Store
}

func NewBlogRepository(s store.Store) *BlogRepository {
	return &BlogRepository{store: s}
}

func (r *BlogRepository) Create(ctx context.Context, post *model.BlogPost) error {
	return r.store.Insert(ctx, store.CollectionBlogPosts, post.ID, post.CreatedAt, post)
}

func (r *BlogRepository) List(ctx context.Context, filter store.Filter) ([]model.BlogPost, error) {
	docs, err := r.store.Find(ctx, store.CollectionBlogPosts, filter,
		store.FindOptions{SortByCreatedAtDesc: true})
	if err != nil {
		return nil, err
	}

	posts := make([]model.BlogPost, 0, len(docs))
	for _, doc := range docs {
		var post model.BlogPost
		if err := json.Unmarshal(doc, &post); err != nil {
			return nil, fmt.Errorf("unmarshal blog post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*model.BlogPost, error) {
	data, err := r.store.FindOne(ctx, store.CollectionBlogPosts, store.Filter{"id": id})
	if err != nil {
		return nil, err
	}

	var post model.BlogPost
	if err := json.Unmarshal(data, &post); err != nil {
		return nil, fmt.Errorf("unmarshal blog post: %w", err)
	}
	return &post, nil
}

func (r *BlogRepository) Update(ctx context.Context, id string, fields map[string]any) (*model.BlogPost, error) {
	if err := r.store.Update(ctx, store.CollectionBlogPosts, id, fields); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionBlogPosts, id)
}
