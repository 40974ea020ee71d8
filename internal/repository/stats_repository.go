package repository

import (
	"context"

	"github.com/tkstudio/site-backend/internal/model"
	"github.com/tkstudio/site-backend/internal/store"
)

// StatsRepository computes dashboard counts. Each count is an independent
// query; no snapshot spans them, so counts taken under concurrent writes may
// be transiently inconsistent with each other.
type StatsRepository struct {
	store store.Store
}

func NewStatsRepository(s store.Store) *StatsRepository {
	return &StatsRepository{store: s}
}

// Stats is the dashboard counts payload.
type Stats struct {
	PortfolioItems int64 `json:"portfolio_items"`
	GalleryImages  int64 `json:"gallery_images"`
	Services       int64 `json:"services"`
	TotalInquiries int64 `json:"total_inquiries"`
	NewInquiries   int64 `json:"new_inquiries"`
	BlogPosts      int64 `json:"blog_posts"`
}

func (r *StatsRepository) Collect(ctx context.Context) (*Stats, error) {
	var (
		stats Stats
		err   error
	)

	if stats.PortfolioItems, err = r.store.Count(ctx, store.CollectionPortfolio, nil); err != nil {
		return nil, err
	}
	if stats.GalleryImages, err = r.store.Count(ctx, store.CollectionGallery, nil); err != nil {
		return nil, err
	}
	if stats.Services, err = r.store.Count(ctx, store.CollectionServices, nil); err != nil {
		return nil, err
	}
	if stats.TotalInquiries, err = r.store.Count(ctx, store.CollectionInquiries, nil); err != nil {
		return nil, err
	}
	if stats.NewInquiries, err = r.store.Count(ctx, store.CollectionInquiries,
		store.Filter{"status": model.InquiryStatusNew}); err != nil {
		return nil, err
	}
	if stats.BlogPosts, err = r.store.Count(ctx, store.CollectionBlogPosts, nil); err != nil {
		return nil, err
	}

	return &stats, nil
}
