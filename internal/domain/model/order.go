package model

import "time"

// Status=false が未完了（キッチン待ち）、true が受け渡し可能。
// OrderReadyAt は完了時に一度だけ打刻される。
type Order struct {
	ID            int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	Total         int64          `gorm:"not null" json:"total"`
	Status        bool           `gorm:"not null;default:false;index" json:"status"`
	OrderReadyAt  *time.Time     `gorm:"index" json:"order_ready_at"`
	CreatedAt     time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	OrderProducts []OrderProduct `gorm:"foreignKey:OrderID" json:"order_products,omitempty"`
}
