package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tkstudio/site-backend/internal/model"
	"github.com/tkstudio/site-backend/internal/store"
)

// AdminRepository persists admin principals in the admin_users collection.
// Email uniqueness is enforced by the store.
type AdminRepository struct {
	store store.Store
}

func NewAdminRepository(s store.Store) *AdminRepository {
	return &AdminRepository{store: s}
}

func (r *AdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	return r.store.Insert(ctx, store.CollectionAdminUsers, admin.ID, admin.CreatedAt, admin)
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	data, err := r.store.FindOne(ctx, store.CollectionAdminUsers, store.Filter{"email": email})
	if err != nil {
		return nil, err
	}

	var admin model.Admin
	if err := json.Unmarshal(data, &admin); err != nil {
		return nil, fmt.Errorf("unmarshal admin: %w", err)
	}
	return &admin, nil
}
