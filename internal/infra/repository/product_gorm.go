package repository

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// カテゴリslugで商品一覧（メニューページ用）
func (r *ProductGormRepository) ListByCategorySlug(ctx context.Context, slug string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("categories.slug = ?", slug).
		Order("products.id asc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// 管理画面の一覧（カテゴリ込み、ページング、totalも返す）
func (r *ProductGormRepository) ListAdmin(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	var products []model.Product
	offset := (q.Page - 1) * q.Limit
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("id asc").
		Offset(offset).
		Limit(q.Limit).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, 0, err
	}

	return products, total, nil
}

// 名前の部分一致（大文字小文字は区別しない）
func (r *ProductGormRepository) SearchByName(ctx context.Context, term string) ([]model.Product, error) {
	like := "%" + strings.TrimSpace(term) + "%"

	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("name ILIKE ?", like).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":        p.Name,
		"price":       p.Price,
		"image":       p.Image,
		"category_id": p.CategoryID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
