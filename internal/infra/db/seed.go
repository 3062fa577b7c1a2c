package db

import (
	"app/internal/domain/model"

	"gorm.io/gorm"
)

// SeedCategories は初回起動時にメニューカテゴリを投入する。
// 既にカテゴリがあれば何もしない。
func SeedCategories(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []model.Category{
		{Name: "Burgers", Slug: "burger"},
		{Name: "Fries", Slug: "fries"},
		{Name: "Drinks", Slug: "drink"},
		{Name: "Desserts", Slug: "dessert"},
		{Name: "Salads", Slug: "salad"},
		{Name: "Coffee", Slug: "coffee"},
	}
	return gormDB.Create(&categories).Error
}
