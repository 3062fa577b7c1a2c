package validator

// Issue は1フィールド分の検証エラー。
// Fieldはフィールドパス、Messageはそのままユーザーに見せる文言。
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
