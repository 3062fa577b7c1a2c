package validator

import (
	"testing"

	"app/internal/cart"

	"github.com/stretchr/testify/assert"
)

func validCandidate() OrderCandidate {
	return OrderCandidate{
		Name:  "Taro",
		Total: 2500,
		Order: []cart.OrderItem{
			{ID: 1, Name: "Burger", Price: 1000, Quantity: 2, Subtotal: 2000},
			{ID: 2, Name: "Fries", Price: 500, Quantity: 1, Subtotal: 500},
		},
	}
}

func TestValidateOrder_Valid(t *testing.T) {
	out, issues := ValidateOrder(validCandidate())

	assert.Empty(t, issues)
	assert.Equal(t, validCandidate(), out)
}

func TestValidateOrder_TrimsName(t *testing.T) {
	in := validCandidate()
	in.Name = "  Taro  "

	out, issues := ValidateOrder(in)
	assert.Empty(t, issues)
	assert.Equal(t, "Taro", out.Name)
}

func TestValidateOrder_NameRequired(t *testing.T) {
	in := validCandidate()
	in.Name = "   "

	_, issues := ValidateOrder(in)
	assert.Len(t, issues, 1)
	assert.Equal(t, "name", issues[0].Field)
	assert.Equal(t, "Your Name is Required", issues[0].Message)
}

func TestValidateOrder_TotalMustBePositive(t *testing.T) {
	in := validCandidate()
	in.Total = 0

	_, issues := ValidateOrder(in)
	assert.Len(t, issues, 1)
	assert.Equal(t, "total", issues[0].Field)
}

func TestValidateOrder_EmptyOrder(t *testing.T) {
	_, issues := ValidateOrder(OrderCandidate{Name: "Taro", Total: 100})

	assert.Len(t, issues, 1)
	assert.Equal(t, "order", issues[0].Field)
}

func TestValidateOrder_QuantityOutOfRange(t *testing.T) {
	in := validCandidate()
	in.Order[0].Quantity = 6
	in.Order[0].Subtotal = 6000
	in.Total = 6500

	_, issues := ValidateOrder(in)
	assert.Len(t, issues, 1)
	assert.Equal(t, "order.0.quantity", issues[0].Field)
}

func TestValidateOrder_SubtotalMismatch(t *testing.T) {
	in := validCandidate()
	in.Order[1].Subtotal = 9999

	_, issues := ValidateOrder(in)
	assert.Len(t, issues, 1)
	assert.Equal(t, "order.1.subtotal", issues[0].Field)
}

// 複数の不備は全部まとめて返す（最初の1件で打ち切らない）
func TestValidateOrder_CollectsAllIssues(t *testing.T) {
	_, issues := ValidateOrder(OrderCandidate{
		Name:  "",
		Total: -1,
		Order: []cart.OrderItem{{ID: 1, Price: 100, Quantity: 0, Subtotal: 5}},
	})

	fields := make([]string, 0, len(issues))
	for _, is := range issues {
		fields = append(fields, is.Field)
	}
	assert.ElementsMatch(t, []string{"name", "total", "order.0.quantity", "order.0.subtotal"}, fields)
}

func TestValidateOrderID(t *testing.T) {
	id, issues := ValidateOrderID(" 42 ")
	assert.Empty(t, issues)
	assert.Equal(t, int64(42), id)
}

func TestValidateOrderID_Invalid(t *testing.T) {
	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		_, issues := ValidateOrderID(raw)
		assert.Len(t, issues, 1, "raw=%q", raw)
		assert.Equal(t, "order_id", issues[0].Field)
	}
}
