package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viewRecorder struct {
	mu    sync.Mutex
	views []View
}

func (r *viewRecorder) record(v View) {
	r.mu.Lock()
	r.views = append(r.views, v)
	r.mu.Unlock()
}

func (r *viewRecorder) snapshot() []View {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]View, len(r.views))
	copy(out, r.views)
	return out
}

// 起動直後にLoading、tickを待たず初回fetchの結果が来る
func TestPoller_LoadingThenFirstFetch(t *testing.T) {
	rec := &viewRecorder{}
	fetch := func(ctx context.Context) (interface{}, int, error) {
		return []string{"order-1"}, 1, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		New(time.Hour, fetch, rec.record).Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	views := rec.snapshot()
	assert.Equal(t, StateLoading, views[0].State)
	assert.Equal(t, StatePopulated, views[1].State)
	assert.Equal(t, []string{"order-1"}, views[1].Items)
}

func TestPoller_EmptyResult(t *testing.T) {
	rec := &viewRecorder{}
	fetch := func(ctx context.Context) (interface{}, int, error) {
		return []string{}, 0, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		New(time.Hour, fetch, rec.record).Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, StateEmpty, rec.snapshot()[1].State)
}

// 失敗したtickはErrを流すだけで、ポーリング自体は続く
func TestPoller_ErrorThenRecovers(t *testing.T) {
	rec := &viewRecorder{}
	var calls int
	var mu sync.Mutex
	fetch := func(ctx context.Context) (interface{}, int, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			return nil, 0, errors.New("connection refused")
		}
		return []string{"order-1"}, 1, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		New(5*time.Millisecond, fetch, rec.record).Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	views := rec.snapshot()
	assert.Error(t, views[1].Err)
	assert.Equal(t, StatePopulated, views[2].State)
}

// 毎tickの結果は前回を上書きする（蓄積しない）
func TestPoller_ReplacesOnEachTick(t *testing.T) {
	rec := &viewRecorder{}
	var calls int
	var mu sync.Mutex
	fetch := func(ctx context.Context) (interface{}, int, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n < 3 {
			return []string{"order-1"}, 1, nil
		}
		return []string{}, 0, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		New(5*time.Millisecond, fetch, rec.record).Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		views := rec.snapshot()
		return len(views) > 0 && views[len(views)-1].State == StateEmpty
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestPoller_StopsOnCancel(t *testing.T) {
	fetch := func(ctx context.Context) (interface{}, int, error) {
		return nil, 0, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		New(time.Millisecond, fetch, func(View) {}).Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancel")
	}
}
