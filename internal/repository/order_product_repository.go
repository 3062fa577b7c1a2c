package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderProductRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderProduct) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderProduct, error)
}
