package cart

// CheckoutStatus は注文確定フローの状態。
// 暗黙の「カートが埋まったら送信」ではなく、状態遷移を明示する。
type CheckoutStatus string

const (
	CheckoutStatusBuilding        CheckoutStatus = "BUILDING"
	CheckoutStatusAwaitingPayment CheckoutStatus = "AWAITING_PAYMENT"
	CheckoutStatusReturned        CheckoutStatus = "RETURNED"
	CheckoutStatusValidating      CheckoutStatus = "VALIDATING"
	CheckoutStatusSubmitting      CheckoutStatus = "SUBMITTING"
	CheckoutStatusDone            CheckoutStatus = "DONE"
	CheckoutStatusCanceled        CheckoutStatus = "CANCELED"
)

func (s CheckoutStatus) IsTerminal() bool {
	return s == CheckoutStatusDone || s == CheckoutStatusCanceled
}

func (s CheckoutStatus) String() string {
	return string(s)
}
