package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type OrderProductGormRepository struct {
	db *gorm.DB
}

func NewOrderProductGormRepository(db *gorm.DB) *OrderProductGormRepository {
	return &OrderProductGormRepository{db: db}
}

func (r *OrderProductGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderProduct) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}
	return nil
}

func (r *OrderProductGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderProduct, error) {
	var items []model.OrderProduct
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Preload("Product").
		Find(&items).Error
	if err != nil {
		return []model.OrderProduct{}, err
	}
	return items, nil
}
