package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/refresh"
	"app/internal/validator"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	hub          *refresh.Hub
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
	hub *refresh.Hub,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		hub:          hub,
	}
}

// GET /order/:category の出力
type MenuOutput struct {
	Category   model.Category   `json:"category"`
	Categories []model.Category `json:"categories"`
	Products   []model.Product  `json:"products"`
}

// ListMenu はカテゴリページ用に、カテゴリ本体・全カテゴリ・商品を返す。
func (u *ProductUsecase) ListMenu(ctx context.Context, slug string) (MenuOutput, error) {
	category, err := u.categoryRepo.FindBySlug(ctx, slug)
	if err == repo.ErrNotFound {
		return MenuOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return MenuOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return MenuOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products, err := u.productRepo.ListByCategorySlug(ctx, slug)
	if err != nil {
		return MenuOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MenuOutput{
		Category:   category,
		Categories: categories,
		Products:   products,
	}, nil
}

type ProductListOutput struct {
	Items      []model.Product `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// AdminListProducts は管理画面のページング一覧。
// 範囲外のページは400（元実装はリダイレクトだがAPIでは弾く）。
func (u *ProductUsecase) AdminListProducts(ctx context.Context, page int, limit int) (ProductListOutput, error) {
	if page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.productRepo.ListAdmin(ctx, repo.ProductListQuery{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if page > totalPages && total > 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}

	return ProductListOutput{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// SearchProducts は名前の部分一致検索。キーワードはvalidatorを通す。
func (u *ProductUsecase) SearchProducts(ctx context.Context, rawTerm string) ([]model.Product, []validator.Issue, error) {
	term, issues := validator.ValidateSearchTerm(rawTerm)
	if len(issues) > 0 {
		return nil, issues, nil
	}

	products, err := u.productRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// CreateProduct は検証→保存の順を崩さない。
// issuesが返った場合はストレージには一切触れていない。
func (u *ProductUsecase) CreateProduct(ctx context.Context, in validator.ProductInput) (model.Product, []validator.Issue, error) {
	normalized, issues := validator.ValidateProduct(in)
	if len(issues) > 0 {
		return model.Product{}, issues, nil
	}

	created, err := u.productRepo.Create(ctx, model.Product{
		Name:       normalized.Name,
		Price:      normalized.Price,
		Image:      normalized.Image,
		CategoryID: normalized.CategoryID,
	})
	if err != nil {
		return model.Product{}, nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.hub.Notify("/admin/products")
	return created, nil, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, in validator.ProductInput) ([]validator.Issue, error) {
	if productID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	normalized, issues := validator.ValidateProduct(in)
	if len(issues) > 0 {
		return issues, nil
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:         productID,
		Name:       normalized.Name,
		Price:      normalized.Price,
		Image:      normalized.Image,
		CategoryID: normalized.CategoryID,
	})
	if err == repo.ErrNotFound {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.hub.Notify("/admin/products")
	return nil, nil
}
