package store

import (
	"context"
	"errors"
	"time"
)

// Collection names used by the application. Every collection is an untyped
// bag of JSON documents keyed by an application-assigned string id.
const (
	CollectionAdminUsers   = "admin_users"
	CollectionPortfolio    = "portfolio"
	CollectionGallery      = "gallery"
	CollectionServices     = "services"
	CollectionTeam         = "team"
	CollectionTestimonials = "testimonials"
	CollectionBlogPosts    = "blog_posts"
	CollectionInquiries    = "inquiries"
)

// MaxListResults caps every list query.
const MaxListResults = 1000

var (
	// ErrNoDocuments is returned when a lookup, update or delete matches
	// nothing.
	ErrNoDocuments = errors.New("no documents in result")

	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (document id or admin email).
	ErrDuplicate = errors.New("duplicate document")
)

// Filter is a set of exact-match conditions on top-level document fields.
// A nil or empty filter matches every document in the collection.
type Filter map[string]any

// FindOptions controls ordering and result size of Find.
type FindOptions struct {
	// SortByCreatedAtDesc orders results newest-first. When false the
	// store's default (insertion) order is used.
	SortByCreatedAtDesc bool
	// Limit caps the number of returned documents; zero means
	// MaxListResults.
	Limit int
}

// Store is a generic document store. Documents are opaque JSON; callers own
// marshaling. All uniqueness guarantees live here, not in process.
type Store interface {
	// Insert persists doc under (collection, id). createdAt is kept as a
	// dedicated sortable attribute alongside the document body.
	Insert(ctx context.Context, collection, id string, createdAt time.Time, doc any) error

	// FindOne returns the first document matching filter, or
	// ErrNoDocuments.
	FindOne(ctx context.Context, collection string, filter Filter) ([]byte, error)

	// Find returns all documents matching filter, subject to opts.
	// An empty result is a nil slice, not an error.
	Find(ctx context.Context, collection string, filter Filter, opts FindOptions) ([][]byte, error)

	// Update merges fields into the document with the given id; fields
	// that are present overwrite, absent fields are untouched. Returns
	// ErrNoDocuments if the id does not exist.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	// Delete removes the document with the given id, returning
	// ErrNoDocuments if nothing was deleted.
	Delete(ctx context.Context, collection, id string) error

	// Count returns the number of documents matching filter.
	Count(ctx context.Context, collection string, filter Filter) (int64, error)
}
