package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"
)

// Memory is an in-process Store used by tests and local development. It
// mirrors the Postgres implementation's semantics: (collection, id)
// uniqueness, equality filters, merge updates.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]*memDoc
	seq         int64
}

type memDoc struct {
	data      []byte
	createdAt time.Time
	seq       int64
}

// NewMemory creates an empty in-memory document store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[string]*memDoc)}
}

func (s *Memory) Insert(_ context.Context, collection, id string, createdAt time.Time, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.collections[collection]
	if col == nil {
		col = make(map[string]*memDoc)
		s.collections[collection] = col
	}
	if _, exists := col[id]; exists {
		return ErrDuplicate
	}

	s.seq++
	col[id] = &memDoc{data: data, createdAt: createdAt, seq: s.seq}
	return nil
}

func (s *Memory) FindOne(_ context.Context, collection string, filter Filter) ([]byte, error) {
	cond, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.sorted(collection, FindOptions{}) {
		if matches(d.data, cond) {
			return d.data, nil
		}
	}
	return nil, ErrNoDocuments
}

func (s *Memory) Find(_ context.Context, collection string, filter Filter, opts FindOptions) ([][]byte, error) {
	cond, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 || limit > MaxListResults {
		limit = MaxListResults
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs [][]byte
	for _, d := range s.sorted(collection, opts) {
		if !matches(d.data, cond) {
			continue
		}
		docs = append(docs, d.data)
		if len(docs) == limit {
			break
		}
	}
	return docs, nil
}

func (s *Memory) Update(_ context.Context, collection, id string, fields map[string]any) error {
	patch, err := normalizeFilter(fields)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.collections[collection][id]
	if !ok {
		return ErrNoDocuments
	}

	var doc map[string]any
	if err := json.Unmarshal(d.data, &doc); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}
	for k, v := range patch {
		doc[k] = v
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	d.data = merged
	return nil
}

func (s *Memory) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return ErrNoDocuments
	}
	delete(s.collections[collection], id)
	return nil
}

func (s *Memory) Count(_ context.Context, collection string, filter Filter) (int64, error) {
	cond, err := normalizeFilter(filter)
	if err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, d := range s.collections[collection] {
		if matches(d.data, cond) {
			n++
		}
	}
	return n, nil
}

// sorted returns the collection's documents in insertion order, or newest
// first when requested. Callers must hold at least the read lock.
func (s *Memory) sorted(collection string, opts FindOptions) []*memDoc {
	col := s.collections[collection]
	docs := make([]*memDoc, 0, len(col))
	for _, d := range col {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool {
		if opts.SortByCreatedAtDesc {
			if !docs[i].createdAt.Equal(docs[j].createdAt) {
				return docs[i].createdAt.After(docs[j].createdAt)
			}
			return docs[i].seq > docs[j].seq
		}
		return docs[i].seq < docs[j].seq
	})
	return docs
}

// normalizeFilter round-trips filter values through JSON so comparisons see
// the same representation the stored documents carry.
func normalizeFilter(filter map[string]any) (map[string]any, error) {
	if len(filter) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("marshal filter: %w", err)
	}
	var norm map[string]any
	if err := json.Unmarshal(raw, &norm); err != nil {
		return nil, fmt.Errorf("unmarshal filter: %w", err)
	}
	return norm, nil
}

func matches(data []byte, cond map[string]any) bool {
	if len(cond) == 0 {
		return true
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return false
	}
	for k, want := range cond {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
