package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/cart"
	"app/internal/payment"
	"app/internal/validator"
)

// OrderCreator は確定した注文を永続化する約束。
// issuesが返った場合はストレージに触れていないことを保証する。
type OrderCreator interface {
	CreateOrder(ctx context.Context, candidate validator.OrderCandidate) ([]validator.Issue, error)
}

// CheckoutUsecase は注文確定フローの状態機械。
//
//	Building → AwaitingPayment → Returned → Validating → Submitting → Done
//	                          ↘ Canceled
//
// 決済リダイレクトの間アプリの状態は保てないので、
// ドラフト（スナップショット）だけが行きと帰りを繋ぐ。
type CheckoutUsecase struct {
	carts    *cart.Manager
	drafts   cart.DraftStore
	payments payment.SessionCreator
	orders   OrderCreator

	label   string // 決済ページに出す店名
	baseURL string // success/canceledルートの組み立てに使う
}

func NewCheckoutUsecase(
	carts *cart.Manager,
	drafts cart.DraftStore,
	payments payment.SessionCreator,
	orders OrderCreator,
	label string,
	baseURL string,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		carts:    carts,
		drafts:   drafts,
		payments: payments,
		orders:   orders,
		label:    label,
		baseURL:  baseURL,
	}
}

// BeginCheckout は Building → AwaitingPayment。
// ドラフトを保存してから決済セッションを作り、リダイレクト先URLを返す。
// セッション作成に失敗したらBuildingに留まる（保存済みドラフトは
// 次の試行で上書きされるだけなので無害）。
func (u *CheckoutUsecase) BeginCheckout(ctx context.Context, sessionID string, name string) (string, error) {
	store := u.carts.Get(sessionID)
	if store.Len() == 0 {
		return "", NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	draft := cart.OrderDraft{
		Order:  store.Items(),
		Total:  store.Total(),
		Name:   strings.TrimSpace(name),
		Status: cart.CheckoutStatusAwaitingPayment,
	}
	if err := u.drafts.Save(ctx, sessionID, draft); err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "draft save failed")
	}

	session, err := u.payments.CreateSession(ctx, payment.SessionInput{
		Amount:      draft.Total,
		ProductName: u.label,
		SuccessURL:  u.baseURL + "/checkout/success",
		CancelURL:   u.baseURL + "/checkout/canceled",
	})
	if err != nil {
		return "", NewHTTPError(http.StatusBadGateway, "payment session failed")
	}

	return session.URL, nil
}

type SubmissionResult struct {
	Status    cart.CheckoutStatus `json:"status"`
	Submitted bool                `json:"submitted"`
	Issues    []validator.Issue   `json:"issues,omitempty"`
	Messages  []string            `json:"messages,omitempty"`
}

// HandleSuccess は successルート到達後のReturned以降を進める。
// ドラフトはconsume-onceで読むため、再マウント等で二重に呼ばれても
// 2回目は「ドラフト無し＝何もしない」で終わる。
func (u *CheckoutUsecase) HandleSuccess(ctx context.Context, sessionID string) (SubmissionResult, error) {
	draft, found, err := u.drafts.Consume(ctx, sessionID)
	if err != nil {
		return SubmissionResult{}, NewHTTPError(http.StatusInternalServerError, "draft read failed")
	}
	if !found {
		//送信するものが無い（既に送信済み、または直接アクセス）
		return SubmissionResult{Status: cart.CheckoutStatusReturned}, nil
	}

	//カートをドラフトから復元してから検証・送信する
	store := u.carts.Get(sessionID)
	store.Rehydrate(draft.Order)

	candidate := validator.OrderCandidate{
		Name:  draft.Name,
		Total: draft.Total,
		Order: store.Items(),
	}

	issues, err := u.orders.CreateOrder(ctx, candidate)
	if len(issues) > 0 {
		//検証失敗。ストレージには触れていないので、ドラフトを書き戻して
		//カートともに残す（consumeを取り消す）
		draft.Status = cart.CheckoutStatusReturned
		_ = u.drafts.Save(ctx, sessionID, draft)
		return SubmissionResult{
			Status: cart.CheckoutStatusValidating,
			Issues: issues,
		}, nil
	}
	if err != nil {
		//ストレージ障害。部分書き込みは無いので、ドラフトを書き戻して
		//状態を壊さずにエラーを見せる
		draft.Status = cart.CheckoutStatusReturned
		_ = u.drafts.Save(ctx, sessionID, draft)
		return SubmissionResult{}, err
	}

	//Done。カートを空にする（ドラフトはconsume済み）
	store.ClearOrder()
	return SubmissionResult{
		Status:    cart.CheckoutStatusDone,
		Submitted: true,
		Messages:  []string{"Order Done!"},
	}, nil
}

// HandleCancel は canceledルート。ドラフトもカートも捨てる。サーバー側の書き込みは無い。
func (u *CheckoutUsecase) HandleCancel(ctx context.Context, sessionID string) error {
	if err := u.drafts.Clear(ctx, sessionID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "draft clear failed")
	}
	u.carts.Get(sessionID).ClearOrder()
	return nil
}
