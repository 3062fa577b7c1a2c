package poller

import (
	"context"
	"time"
)

// 表示用の三状態（読み込み中 / 空 / あり）
type State int

const (
	StateLoading State = iota
	StateEmpty
	StatePopulated
)

// View は1回のfetchの結果。失敗したtickはErrだけ持つ。
type View struct {
	State State
	Items interface{}
	Err   error
}

// FetchFunc はアイテムと件数を返す。
type FetchFunc func(ctx context.Context) (interface{}, int, error)

// Poller は固定間隔でfetchして結果を丸ごと差し替える。
// キャッシュも重複排除もしない（毎tickが独立したfetch-replace）。
type Poller struct {
	interval time.Duration
	fetch    FetchFunc
	onView   func(View)
}

func New(interval time.Duration, fetch FetchFunc, onView func(View)) *Poller {
	return &Poller{
		interval: interval,
		fetch:    fetch,
		onView:   onView,
	}
}

// Run はまずLoadingを流し、すぐ初回fetch、以降は固定間隔で回す。
// ctxのキャンセルで止まる。
func (p *Poller) Run(ctx context.Context) {
	p.onView(View{State: StateLoading})
	p.tick(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.tick(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	items, count, err := p.fetch(ctx)
	if err != nil {
		p.onView(View{Err: err})
		return
	}
	if count == 0 {
		p.onView(View{State: StateEmpty})
		return
	}
	p.onView(View{State: StatePopulated, Items: items})
}
