package cart

import (
	"context"
	"encoding/json"
	"sync"
)

// OrderDraft は決済リダイレクト直前のカートのスナップショット。
// Total は保存時点の合計で、後から再計算しない。
type OrderDraft struct {
	Order  []OrderItem    `json:"order"`
	Total  int64          `json:"total"`
	Name   string         `json:"name"`
	Status CheckoutStatus `json:"status"`
}

// DraftStore はナビゲーションをまたいで生き残るドラフトの置き場。
// Consume は読み取りと削除を不可分に行う（consume-once）。
// 同じドラフトで注文が二重送信されるのを防ぐため、読み直しはできない。
type DraftStore interface {
	Save(ctx context.Context, sessionID string, draft OrderDraft) error
	Consume(ctx context.Context, sessionID string) (OrderDraft, bool, error)
	Clear(ctx context.Context, sessionID string) error
}

// MemoryDraftStore はテスト・ローカル用のインメモリ実装。
// 値はJSON文字列で持ち、壊れたデータは「無い」扱いにする（Redis実装と同じ挙動）。
type MemoryDraftStore struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{data: map[string]string{}}
}

func (s *MemoryDraftStore) Save(ctx context.Context, sessionID string, draft OrderDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = string(raw)
	return nil
}

func (s *MemoryDraftStore) Consume(ctx context.Context, sessionID string) (OrderDraft, bool, error) {
	s.mu.Lock()
	raw, ok := s.data[sessionID]
	delete(s.data, sessionID)
	s.mu.Unlock()

	if !ok {
		return OrderDraft{}, false, nil
	}

	var draft OrderDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		//壊れたドラフトは「無い」と同じ
		return OrderDraft{}, false, nil
	}
	return draft, true, nil
}

func (s *MemoryDraftStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}
