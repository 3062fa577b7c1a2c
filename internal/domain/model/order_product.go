package model

// 注文と商品の中間テーブル
type OrderProduct struct {
	ID        int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64    `gorm:"not null;index" json:"order_id"`
	ProductID int64    `gorm:"not null;index" json:"product_id"`
	Quantity  int64    `gorm:"not null" json:"quantity"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
