package validator

import (
	"fmt"
	"strconv"
	"strings"

	"app/internal/cart"
)

// OrderCandidate は送信前の注文データ。
type OrderCandidate struct {
	Name  string           `json:"name"`
	Total int64            `json:"total"`
	Order []cart.OrderItem `json:"order"`
}

// ValidateOrder は注文データを検証し、正常なら正規化済みの値を返す。
// issuesが空でなければ検証失敗。
func ValidateOrder(in OrderCandidate) (OrderCandidate, []Issue) {
	var issues []Issue

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		issues = append(issues, Issue{Field: "name", Message: "Your Name is Required"})
	}
	if in.Total <= 0 {
		issues = append(issues, Issue{Field: "total", Message: "Total must be greater than 0"})
	}
	if len(in.Order) == 0 {
		issues = append(issues, Issue{Field: "order", Message: "The order cannot be empty"})
	}

	for i, item := range in.Order {
		if item.Quantity < cart.MinQuantity || item.Quantity > cart.MaxQuantity {
			issues = append(issues, Issue{
				Field:   fmt.Sprintf("order.%d.quantity", i),
				Message: fmt.Sprintf("Quantity must be between %d and %d", cart.MinQuantity, cart.MaxQuantity),
			})
		}
		if item.Subtotal != item.Price*item.Quantity {
			issues = append(issues, Issue{
				Field:   fmt.Sprintf("order.%d.subtotal", i),
				Message: "Subtotal does not match price and quantity",
			})
		}
	}

	if len(issues) > 0 {
		return OrderCandidate{}, issues
	}
	return in, nil
}

// ValidateOrderID はフォーム値のorder_idを検証する。
func ValidateOrderID(raw string) (int64, []Issue) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, []Issue{{Field: "order_id", Message: "Invalid order id"}}
	}
	return id, nil
}
