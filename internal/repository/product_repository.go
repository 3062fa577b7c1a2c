package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 管理画面の一覧ページング
type ProductListQuery struct {
	Page  int
	Limit int
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	ListByCategorySlug(ctx context.Context, slug string) ([]model.Product, error)
	ListAdmin(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	SearchByName(ctx context.Context, term string) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
}
