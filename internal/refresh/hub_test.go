package refresh

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHub_NotifyReachesAllSubscribers(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()

	h.Notify("/admin/orders")

	assert.Equal(t, "/admin/orders", <-a)
	assert.Equal(t, "/admin/orders", <-b)
}

func TestHub_NotifyWithoutSubscribers(t *testing.T) {
	h := NewHub()
	// 誰もいなくてもブロックしない
	h.Notify("/admin/products")
}

// 詰まった購読者がいても通知側は待たされない
func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()
	slow := h.Subscribe()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			h.Notify("/admin/orders")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a slow subscriber")
	}
	// バッファ分だけは届いている
	assert.Equal(t, "/admin/orders", <-slow)
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()

	h.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)

	// 解除後のNotifyはchに触らない（closed channelへのsendでpanicしない）
	h.Notify("/admin/orders")
}

func TestHub_UnsubscribeTwiceIsSafe(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()

	h.Unsubscribe(ch)
	h.Unsubscribe(ch)
}
