package cart

import "sync"

// Manager はセッションIDごとのStoreを払い出す。
// mapの出し入れだけロックし、Store自体は書き手が1人の前提（spec上は単一セッション）。
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager() *Manager {
	return &Manager{stores: map[string]*Store{}}
}

// Get はセッションのStoreを返す。無ければ空で作る。
func (m *Manager) Get(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stores[sessionID]
	if !ok {
		s = NewStore()
		m.stores[sessionID] = s
	}
	return s
}

// Drop はセッションのStoreを破棄する。
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionID)
}
