package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SessionCreator はホスト型決済ページのセッションを作る約束。
// 成功するとユーザーをリダイレクトさせるURLが返る。
type SessionCreator interface {
	CreateSession(ctx context.Context, in SessionInput) (Session, error)
}

type SessionInput struct {
	// 最小通貨単位（セント）。0以下は弾く。
	Amount int64 `json:"amount"`
	// 決済ページに表示する名目
	ProductName string `json:"product_name"`
	SuccessURL  string `json:"success_url"`
	CancelURL   string `json:"cancel_url"`
}

type Session struct {
	URL string `json:"url"`
}

// Client は決済プロバイダのcheckout sessions APIを叩くHTTPクライアント。
// ハングで黙り込まないようタイムアウトを必ず持つ。
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL string, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sessionResponse struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

func (c *Client) CreateSession(ctx context.Context, in SessionInput) (Session, error) {
	if in.Amount <= 0 {
		return Session{}, fmt.Errorf("amount must be > 0")
	}
	if in.ProductName == "" {
		return Session{}, fmt.Errorf("product name is required")
	}

	body, err := json.Marshal(in)
	if err != nil {
		return Session{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout_sessions", bytes.NewReader(body))
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("payment session request failed: %w", err)
	}
	defer res.Body.Close()

	var out sessionResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return Session{}, fmt.Errorf("payment session response decode failed: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		msg := out.Error
		if msg == "" {
			msg = res.Status
		}
		return Session{}, fmt.Errorf("payment session rejected: %s", msg)
	}
	if out.URL == "" {
		return Session{}, fmt.Errorf("payment session response has no url")
	}

	return Session{URL: out.URL}, nil
}
