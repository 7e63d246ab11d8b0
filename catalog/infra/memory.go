package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"appcatalog/catalog/domain"
)

// MemoryStore é uma implementação simples em memória, ordenada por chave.
// Útil para testes e desenvolvimento local (STORE_DRIVER=memory).
//
// Os dados são fixados na construção; nada é alterado depois, então não há lock.
type MemoryStore struct {
	apps []domain.Application
}

func NewMemoryStore(apps ...domain.Application) (*MemoryStore, error) {
	sorted := slices.Clone(apps)
	slices.SortFunc(sorted, func(a, b domain.Application) int {
		return strings.Compare(string(a.ID), string(b.ID))
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].ID == sorted[i-1].ID {
			return nil, fmt.Errorf("duplicate application id %q", sorted[i].ID)
		}
	}
	return &MemoryStore{apps: sorted}, nil
}

// LoadMemoryStoreFile lê um array JSON no mesmo formato dos documentos da coleção.
func LoadMemoryStoreFile(path string) (*MemoryStore, error) {
	if strings.TrimSpace(path) == "" {
		return NewMemoryStore()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var docs []applicationDocument
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	apps := make([]domain.Application, 0, len(docs))
	for _, d := range docs {
		if strings.TrimSpace(d.ID) == "" {
			return nil, errors.New("seed document without _id")
		}
		app, err := d.toDomain()
		if err != nil {
			return nil, fmt.Errorf("seed file: %w", err)
		}
		apps = append(apps, app)
	}
	return NewMemoryStore(apps...)
}

func (s *MemoryStore) Len() int { return len(s.apps) }

func (s *MemoryStore) GetByKey(ctx context.Context, key domain.Key) (domain.Application, error) {
	if err := ctx.Err(); err != nil {
		return domain.Application{}, &domain.StoreError{Op: "get", Key: key, Err: err}
	}
	i, found := slices.BinarySearchFunc(s.apps, key, func(a domain.Application, k domain.Key) int {
		return strings.Compare(string(a.ID), string(k))
	})
	if !found {
		return domain.Application{}, domain.ErrNotFound
	}
	return s.apps[i], nil
}

func (s *MemoryStore) PageFromStart(ctx context.Context, limit int) ([]domain.Application, error) {
	return s.pageFrom(ctx, "page from start", "", 0, limit)
}

func (s *MemoryStore) PageAfter(ctx context.Context, key domain.Key, limit int) ([]domain.Application, error) {
	start := sort.Search(len(s.apps), func(i int) bool {
		return s.apps[i].ID > key
	})
	return s.pageFrom(ctx, "page after", key, start, limit)
}

func (s *MemoryStore) pageFrom(ctx context.Context, op string, key domain.Key, start, limit int) ([]domain.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.StoreError{Op: op, Key: key, Err: err}
	}
	if limit <= 0 {
		return nil, &domain.StoreError{Op: op, Key: key, Err: fmt.Errorf("limit must be greater than zero, got %d", limit)}
	}
	end := min(start+limit, len(s.apps))
	return slices.Clone(s.apps[start:end]), nil
}

var _ domain.ApplicationStore = (*MemoryStore)(nil)
