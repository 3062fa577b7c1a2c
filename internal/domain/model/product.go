package model

import (
	"strings"
	"time"
)

const cloudinaryBaseURL = "https://res.cloudinary.com"

type Product struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Price      int64     `gorm:"not null" json:"price"` // 最小通貨単位（セント）
	Image      string    `gorm:"type:varchar(255);not null" json:"image"`
	CategoryID int64     `gorm:"not null;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// ImageURL はフルURLならそのまま、ファイル名なら /products/ 配下に解決する。
func (p Product) ImageURL() string {
	if strings.HasPrefix(p.Image, cloudinaryBaseURL) {
		return p.Image
	}
	return "/products/" + p.Image + ".jpg"
}
