package dto

// ErrorResponse はエラーレスポンスのエンベロープです。
// Errorには文字列メッセージ、またはバリデーションエラーの
// {field, message} 構造が入ります。
type ErrorResponse struct {
	Error any `json:"error"`
}

// StatusResponse は削除成功時の確認応答ボディです。
type StatusResponse struct {
	Status string `json:"status"`
}
