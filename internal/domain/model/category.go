package model

import "time"

// メニューのカテゴリ（burger / fries など）
type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
