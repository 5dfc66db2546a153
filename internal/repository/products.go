package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sajid-inmogr/admin-backend/internal/domain"
)

// ProductStore covers the products sub-collection of a client, which
// needs set-level operations the generic store does not offer.
type ProductStore struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewProductStore(db *gorm.DB, log *zap.Logger) *ProductStore {
	return &ProductStore{db: db, log: log}
}

func (s *ProductStore) ByClient(ctx context.Context, clientID int64) ([]domain.Product, error) {
	var products []domain.Product
	result := s.db.WithContext(ctx).Where("client_id = ?", clientID).Find(&products)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list products: %w", result.Error)
	}
	return products, nil
}

// ReplaceForClient swaps the client's product set for the given one.
// Rows are deleted then recreated; the brief empty window between the
// two writes mirrors the rest of the repo's single-statement policy.
func (s *ProductStore) ReplaceForClient(ctx context.Context, clientID int64, products []domain.Product) ([]domain.Product, error) {
	tx := s.db.WithContext(ctx)

	result := tx.Where("client_id = ?", clientID).Delete(&domain.Product{})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to clear products: %w", result.Error)
	}

	if len(products) == 0 {
		return []domain.Product{}, nil
	}

	for i := range products {
		products[i].ID = 0
		products[i].ClientID = clientID
	}
	if result := tx.Create(&products); result.Error != nil {
		return nil, fmt.Errorf("failed to store products: %w", result.Error)
	}

	return products, nil
}
