package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tkstudio/site-backend/internal/model"
	"github.com/tkstudio/site-backend/internal/store"
)

type TeamRepository struct {
	store store.Store
}

func NewTeamRepository(s store.Store) *TeamRepository {
	return &TeamRepository{store: s}
}

func (r *TeamRepository) Create(ctx context.Context, member *model.TeamMember) error {
	return r.store.Insert(ctx, store.CollectionTeam, member.ID, member.CreatedAt, member)
}

// List returns team members in store-default order.
func (r *TeamRepository) List(ctx context.Context) ([]model.TeamMember, error) {
	docs, err := r.store.Find(ctx, store.CollectionTeam, nil, store.FindOptions{})
	if err != nil {
		return nil, err
	}

	members := make([]model.TeamMember, 0, len(docs))
	for _, doc := range docs {
		var member model.TeamMember
		if err := json.Unmarshal(doc, &member); err != nil {
			return nil, fmt.Errorf("unmarshal team member: %w", err)
		}
		members = append(members, member)
	}
	return members, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (*model.TeamMember, error) {
	data, err := r.store.FindOne(ctx, store.CollectionTeam, store.Filter{"id": id})
	if err != nil {
		return nil, err
	}

	var member model.TeamMember
	if err := json.Unmarshal(data, &member); err != nil {
		return nil, fmt.Errorf("unmarshal team member: %w", err)
	}
	return &member, nil
}

func (r *TeamRepository) Update(ctx context.Context, id string, fields map[string]any) (*model.TeamMember, error) {
	if err := r.store.Update(ctx, store.CollectionTeam, id, fields); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionTeam, id)
}
