package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDraftStore はドラフトをRedisに置く実装。
// 決済ページへのリダイレクトでアプリのプロセス状態が失われても、
// セッションIDさえ戻ってくればドラフトを復元できる。
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{
		client: client,
		ttl:    time.Hour,
	}
}

func (s *RedisDraftStore) Save(ctx context.Context, sessionID string, draft OrderDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft failed: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(sessionID), string(raw), s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Consume はGETDELで読み取りと削除をatomicに行う。
// 2回目の呼び出しは必ず「無い」になるので、同じドラフトは一度しか送信できない。
func (s *RedisDraftStore) Consume(ctx context.Context, sessionID string) (OrderDraft, bool, error) {
	raw, err := s.client.GetDel(ctx, draftKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return OrderDraft{}, false, nil
	}
	if err != nil {
		return OrderDraft{}, false, fmt.Errorf("redis getdel failed: %w", err)
	}

	var draft OrderDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		//deserialize失敗は「無い」扱い（呼び出し側には返さない）
		return OrderDraft{}, false, nil
	}
	return draft, true, nil
}

func (s *RedisDraftStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func draftKey(sessionID string) string {
	return fmt.Sprintf("draft:%s", sessionID)
}
