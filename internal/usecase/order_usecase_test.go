package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"app/internal/cart"
	"app/internal/domain/model"
	"app/internal/refresh"
	repo "app/internal/repository"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders        repo.OrderRepository
	orderProducts repo.OrderProductRepository
	products      repo.ProductRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository               { return r.orders }
func (r *TxReposMock) OrderProducts() repo.OrderProductRepository { return r.orderProducts }
func (r *TxReposMock) Products() repo.ProductRepository           { return r.products }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) ListPending(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListReady(ctx context.Context, limit int) ([]model.Order, error) {
	args := m.Called(ctx, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) Complete(ctx context.Context, orderID int64, readyAt time.Time) error {
	args := m.Called(ctx, orderID, readyAt)
	return args.Error(0)
}

type OrderProductRepoMock struct{ mock.Mock }

func (m *OrderProductRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderProduct) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderProductRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderProduct, error) {
	panic("not used in OrderUsecase tests")
}

// =====================
// Helper: error contains（HTTPErrorの実装詳細に依存しない）
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

func orderCandidate() validator.OrderCandidate {
	return validator.OrderCandidate{
		Name:  "Taro",
		Total: 2500,
		Order: []cart.OrderItem{
			{ID: 1, Name: "Burger", Price: 1000, Quantity: 2, Subtotal: 2000},
			{ID: 2, Name: "Fries", Price: 500, Quantity: 1, Subtotal: 500},
		},
	}
}

// =====================
// CreateOrder tests
// =====================

func TestOrderUsecase_CreateOrder_ValidationFailure_NoTx(t *testing.T) {
	tx := new(TxManagerMock)
	uc := NewOrderUsecase(tx, refresh.NewHub())

	issues, err := uc.CreateOrder(context.Background(), validator.OrderCandidate{})
	assert.NoError(t, err)
	assert.NotEmpty(t, issues)

	// 検証で落ちたらトランザクションは開かない
	tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestOrderUsecase_CreateOrder_Success(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	itemsRepo := new(OrderProductRepoMock)
	tx.Repos = &TxReposMock{orders: ordersRepo, orderProducts: itemsRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	ordersRepo.On("Create", mock.Anything, model.Order{
		Name:   "Taro",
		Total:  2500,
		Status: false,
	}).Return(int64(7), nil)
	itemsRepo.On("CreateBulk", mock.Anything, int64(7), []model.OrderProduct{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}).Return(nil)

	hub := refresh.NewHub()
	sub := hub.Subscribe()

	uc := NewOrderUsecase(tx, hub)
	issues, err := uc.CreateOrder(ctx, orderCandidate())
	assert.NoError(t, err)
	assert.Empty(t, issues)

	assert.Equal(t, "/admin/orders", <-sub)
	tx.AssertExpectations(t)
	ordersRepo.AssertExpectations(t)
	itemsRepo.AssertExpectations(t)
}

func TestOrderUsecase_CreateOrder_DBError(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	tx.Repos = &TxReposMock{orders: ordersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	ordersRepo.On("Create", mock.Anything, mock.Anything).Return(int64(0), errors.New("boom"))

	hub := refresh.NewHub()
	sub := hub.Subscribe()

	uc := NewOrderUsecase(tx, hub)
	issues, err := uc.CreateOrder(context.Background(), orderCandidate())
	assert.Empty(t, issues)
	assertErrContains(t, err, "db error")

	// 失敗時は通知しない
	select {
	case v := <-sub:
		t.Fatalf("unexpected notify: %q", v)
	default:
	}
}

// =====================
// ListPending / ListReady tests
// =====================

func TestOrderUsecase_ListPending(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	tx.Repos = &TxReposMock{orders: ordersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders := []model.Order{
		{
			ID: 1, Name: "Taro", Total: 2500, Status: false,
			OrderProducts: []model.OrderProduct{
				{OrderID: 1, ProductID: 1, Quantity: 2, Product: &model.Product{ID: 1, Name: "Burger", Price: 1000}},
			},
		},
	}
	ordersRepo.On("ListPending", mock.Anything).Return(orders, nil)

	uc := NewOrderUsecase(tx, refresh.NewHub())
	outs, err := uc.ListPending(context.Background())
	assert.NoError(t, err)
	assert.Len(t, outs, 1)
	assert.Equal(t, int64(1), outs[0].ID)
	assert.Len(t, outs[0].OrderProducts, 1)
	assert.Equal(t, "Burger", outs[0].OrderProducts[0].Product.Name)

	ordersRepo.AssertExpectations(t)
}

func TestOrderUsecase_ListPending_DBError(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	tx.Repos = &TxReposMock{orders: ordersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	ordersRepo.On("ListPending", mock.Anything).Return(nil, errors.New("boom"))

	uc := NewOrderUsecase(tx, refresh.NewHub())
	outs, err := uc.ListPending(context.Background())
	assert.Equal(t, 0, len(outs))
	assertErrContains(t, err, "db error")
}

func TestOrderUsecase_ListReady_UsesLimit(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	tx.Repos = &TxReposMock{orders: ordersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	ordersRepo.On("ListReady", mock.Anything, readyOrdersLimit).Return([]model.Order{}, nil)

	uc := NewOrderUsecase(tx, refresh.NewHub())
	outs, err := uc.ListReady(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, len(outs))

	ordersRepo.AssertExpectations(t)
}

// =====================
// CompleteOrder tests
// =====================

func TestOrderUsecase_CompleteOrder_InvalidID(t *testing.T) {
	tx := new(TxManagerMock)
	uc := NewOrderUsecase(tx, refresh.NewHub())

	issues, err := uc.CompleteOrder(context.Background(), "abc")
	assert.NoError(t, err)
	assert.NotEmpty(t, issues)

	tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestOrderUsecase_CompleteOrder_NotFound(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	tx.Repos = &TxReposMock{orders: ordersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	ordersRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Order{}, repo.ErrNotFound)

	uc := NewOrderUsecase(tx, refresh.NewHub())
	_, err := uc.CompleteOrder(context.Background(), "99")
	assertErrContains(t, err, "not found")
}

func TestOrderUsecase_CompleteOrder_StampsReadyAt(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	tx.Repos = &TxReposMock{orders: ordersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ordersRepo.On("FindByID", mock.Anything, int64(7)).Return(model.Order{ID: 7, Status: false}, nil)
	ordersRepo.On("Complete", mock.Anything, int64(7), now).Return(nil)

	hub := refresh.NewHub()
	sub := hub.Subscribe()

	uc := NewOrderUsecase(tx, hub)
	uc.clock = func() time.Time { return now }

	issues, err := uc.CompleteOrder(context.Background(), "7")
	assert.NoError(t, err)
	assert.Empty(t, issues)

	// 管理画面と提供済み一覧の両方を取り直させる
	assert.Equal(t, "/admin/orders", <-sub)
	assert.Equal(t, "/orders", <-sub)
	ordersRepo.AssertExpectations(t)
}

// 既に完了済みなら打刻し直さない（冪等）
func TestOrderUsecase_CompleteOrder_AlreadyDone_NoRestamp(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	tx.Repos = &TxReposMock{orders: ordersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	readyAt := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
	ordersRepo.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, Status: true, OrderReadyAt: &readyAt,
	}, nil)

	uc := NewOrderUsecase(tx, refresh.NewHub())
	issues, err := uc.CompleteOrder(context.Background(), "7")
	assert.NoError(t, err)
	assert.Empty(t, issues)

	ordersRepo.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}
