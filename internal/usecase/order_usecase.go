package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/refresh"
	"app/internal/validator"
)

// Orders Readyスクリーンに出す最大件数
const readyOrdersLimit = 5

type OrderUsecase struct {
	tx    repo.TransactionManager
	hub   *refresh.Hub
	clock func() time.Time
}

func NewOrderUsecase(tx repo.TransactionManager, hub *refresh.Hub) *OrderUsecase {
	return &OrderUsecase{
		tx:    tx,
		hub:   hub,
		clock: time.Now,
	}
}

type OrderProductOutput struct {
	ProductID int64         `json:"product_id"`
	Quantity  int64         `json:"quantity"`
	Product   model.Product `json:"product"`
}

type OrderOutput struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	Total         int64                `json:"total"`
	Status        bool                 `json:"status"`
	OrderReadyAt  *time.Time           `json:"order_ready_at"`
	CreatedAt     time.Time            `json:"created_at"`
	OrderProducts []OrderProductOutput `json:"order_products"`
}

// CreateOrder は検証済みの候補を受け取り、注文＋明細を1トランザクションで作る。
// issuesが返った場合はストレージには触れていない。
func (u *OrderUsecase) CreateOrder(ctx context.Context, candidate validator.OrderCandidate) ([]validator.Issue, error) {
	normalized, issues := validator.ValidateOrder(candidate)
	if len(issues) > 0 {
		return issues, nil
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orderID, err := r.Orders().Create(ctx, model.Order{
			Name:   normalized.Name,
			Total:  normalized.Total,
			Status: false,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items := make([]model.OrderProduct, 0, len(normalized.Order))
		for _, it := range normalized.Order {
			items = append(items, model.OrderProduct{
				ProductID: it.ID,
				Quantity:  it.Quantity,
			})
		}
		if err := r.OrderProducts().CreateBulk(ctx, orderID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.hub.Notify("/admin/orders")
	return nil, nil
}

// ListPending は未完了の注文（管理画面のポーリング先）。
func (u *OrderUsecase) ListPending(ctx context.Context) ([]OrderOutput, error) {
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListPending(ctx)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = toOrderOutputs(orders)
		return nil
	})
	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// ListReady は完了済みの直近5件（Orders Readyスクリーンのポーリング先）。
func (u *OrderUsecase) ListReady(ctx context.Context) ([]OrderOutput, error) {
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListReady(ctx, readyOrdersLimit)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = toOrderOutputs(orders)
		return nil
	})
	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// CompleteOrder はstatus=trueにしてorder_ready_atを打刻する。
// 既に完了済みなら何もしない（打刻し直さない）。
func (u *OrderUsecase) CompleteOrder(ctx context.Context, rawOrderID string) ([]validator.Issue, error) {
	orderID, issues := validator.ValidateOrderID(rawOrderID)
	if len(issues) > 0 {
		return issues, nil
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//冪等。2回目以降は最初の打刻を保つ
		if order.Status {
			return nil
		}

		if err := r.Orders().Complete(ctx, orderID, u.clock()); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.hub.Notify("/admin/orders")
	u.hub.Notify("/orders")
	return nil, nil
}

func toOrderOutputs(orders []model.Order) []OrderOutput {
	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		items := make([]OrderProductOutput, 0, len(o.OrderProducts))
		for _, op := range o.OrderProducts {
			item := OrderProductOutput{
				ProductID: op.ProductID,
				Quantity:  op.Quantity,
			}
			if op.Product != nil {
				item.Product = *op.Product
			}
			items = append(items, item)
		}
		outs = append(outs, OrderOutput{
			ID:            o.ID,
			Name:          o.Name,
			Total:         o.Total,
			Status:        o.Status,
			OrderReadyAt:  o.OrderReadyAt,
			CreatedAt:     o.CreatedAt,
			OrderProducts: items,
		})
	}
	return outs
}
