package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Store is a persistence façade over one entity table. Relations named
// in FindByID/FindAll are eager-loaded in the same round trip. Create
// and Save each write the full row atomically.
type Store[T any] struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewStore[T any](db *gorm.DB, log *zap.Logger) *Store[T] {
	return &Store[T]{db: db, log: log}
}

func (s *Store[T]) Create(ctx context.Context, entity *T) error {
	result := s.db.WithContext(ctx).Create(entity)
	if result.Error != nil {
		return fmt.Errorf("failed to create record: %w", result.Error)
	}
	return nil
}

func (s *Store[T]) FindByID(ctx context.Context, id int64, relations ...string) (*T, error) {
	tx := s.db.WithContext(ctx)
	for _, rel := range relations {
		tx = tx.Preload(rel)
	}

	var entity T
	result := tx.First(&entity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find record: %w", result.Error)
	}
	return &entity, nil
}

func (s *Store[T]) FindAll(ctx context.Context, relations ...string) ([]T, error) {
	tx := s.db.WithContext(ctx)
	for _, rel := range relations {
		tx = tx.Preload(rel)
	}

	var entities []T
	result := tx.Find(&entities)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list records: %w", result.Error)
	}
	return entities, nil
}

func (s *Store[T]) Save(ctx context.Context, entity *T) error {
	result := s.db.WithContext(ctx).Save(entity)
	if result.Error != nil {
		return fmt.Errorf("failed to save record: %w", result.Error)
	}
	return nil
}

func (s *Store[T]) Delete(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
