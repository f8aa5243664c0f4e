package request

// PredictRequest 预测请求（DTO）
// 对外协议是松散类型 JSON：字段可缺失、可为错误类型，服务端一律
// 取默认值而不是拒绝请求，所以不用结构体绑定，保留原始 map。
type PredictRequest map[string]interface{}

// BatchPredictRequest 批量预测请求（DTO）
type BatchPredictRequest struct {
	Customers []PredictRequest `json:"customers"`
}
