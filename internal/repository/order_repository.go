package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)

	// 未完了（status=false）を古い順で、明細と商品込み
	ListPending(ctx context.Context) ([]model.Order, error)
	// 完了済み（order_ready_at が非NULL）を新しい順で最大limit件
	ListReady(ctx context.Context, limit int) ([]model.Order, error)

	// status=true と打刻を同時に行う
	Complete(ctx context.Context, orderID int64, readyAt time.Time) error
}
