package cart

import "app/internal/domain/model"

// Store はセッション1つ分の注文中カート。
// 商品IDごとに明細は1つだけ（同じ商品の追加は数量加算になる）。
// ミューテーションは全てこのStoreのメソッド経由で行い、
// どの経路でも数量は [MinQuantity, MaxQuantity] に収める。
type Store struct {
	items []OrderItem
}

func NewStore() *Store {
	return &Store{items: []OrderItem{}}
}

// AddToOrder は商品を1つ追加する。
// 既に明細があれば数量+1（上限で頭打ち）、無ければ数量1で末尾に追加。
func (s *Store) AddToOrder(p model.Product) {
	for i := range s.items {
		if s.items[i].ID == p.ID {
			if s.items[i].Quantity >= MaxQuantity {
				return
			}
			s.items[i].Quantity++
			s.items[i].Subtotal = s.items[i].Price * s.items[i].Quantity
			return
		}
	}
	s.items = append(s.items, newOrderItem(p))
}

// IncreaseQuantity は数量+1。明細が無い、または上限なら何もしない。
func (s *Store) IncreaseQuantity(id int64) {
	for i := range s.items {
		if s.items[i].ID == id {
			if s.items[i].Quantity >= MaxQuantity {
				return
			}
			s.items[i].Quantity++
			s.items[i].Subtotal = s.items[i].Price * s.items[i].Quantity
			return
		}
	}
}

// DecreaseQuantity は数量-1。下限（1）より下には下げない。
// 明細を消したい場合は RemoveItem を使う。
func (s *Store) DecreaseQuantity(id int64) {
	for i := range s.items {
		if s.items[i].ID == id {
			if s.items[i].Quantity <= MinQuantity {
				return
			}
			s.items[i].Quantity--
			s.items[i].Subtotal = s.items[i].Price * s.items[i].Quantity
			return
		}
	}
}

// RemoveItem は明細を削除する。無ければ何もしない。
func (s *Store) RemoveItem(id int64) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// ClearOrder は無条件に空にする。
func (s *Store) ClearOrder() {
	s.items = []OrderItem{}
}

// Rehydrate はドラフトの明細を保存時の数量のまま復元する。
// 数量は範囲内に収め、Subtotalは再計算する。既存の中身は捨てる。
func (s *Store) Rehydrate(items []OrderItem) {
	restored := make([]OrderItem, 0, len(items))
	seen := make(map[int64]bool, len(items))
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true

		qty := it.Quantity
		if qty < MinQuantity {
			qty = MinQuantity
		}
		if qty > MaxQuantity {
			qty = MaxQuantity
		}
		restored = append(restored, OrderItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: qty,
			Subtotal: it.Price * qty,
		})
	}
	s.items = restored
}

// Items は明細のコピーを返す（外から書き換えさせない）。
func (s *Store) Items() []OrderItem {
	out := make([]OrderItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total は全明細のSubtotal合計。
func (s *Store) Total() int64 {
	var total int64
	for _, it := range s.items {
		total += it.Subtotal
	}
	return total
}

func (s *Store) Len() int {
	return len(s.items)
}
