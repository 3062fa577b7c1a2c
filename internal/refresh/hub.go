package refresh

import "sync"

// Hub はミューテーション後の「この画面を取り直して」という合図を配る。
// 購読者が詰まっていても通知側は待たない（落とすだけ）。
type Hub struct {
	mu   sync.Mutex
	subs map[chan string]bool
}

func NewHub() *Hub {
	return &Hub{subs: map[chan string]bool{}}
}

// Subscribe は合図を受け取るchannelを返す。
func (h *Hub) Subscribe() chan string {
	ch := make(chan string, 8)
	h.mu.Lock()
	h.subs[ch] = true
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	if h.subs[ch] {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Notify は対象ビュー（パス）を全購読者に流す。
func (h *Hub) Notify(view string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- view:
		default:
			//受け取りが遅い購読者はスキップ
		}
	}
}
