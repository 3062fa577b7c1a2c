package cart

import "app/internal/domain/model"

// 1商品あたりの数量の下限・上限
const (
	MinQuantity int64 = 1
	MaxQuantity int64 = 5
)

// OrderItem は注文中の1明細。
// 商品を追加した時点のid/name/priceのスナップショットで、
// 後から商品価格が変わっても明細には影響しない。
// Subtotal は常に Price*Quantity を再計算して保つ。
type OrderItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
	Subtotal int64  `json:"subtotal"`
}

func newOrderItem(p model.Product) OrderItem {
	return OrderItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: 1,
		Subtotal: p.Price,
	}
}
