package transport

import "fmt"

// 错误码规范：服务端返回的 code 优先；无 code 的 HTTP 错误使用 HTTP_<status>；
// 连接层失败使用 NETWORK_ERROR；请求尚未发出即失败使用 REQUEST_ERROR。
const (
	CodeNetworkError = "NETWORK_ERROR"
	CodeRequestError = "REQUEST_ERROR"
)

// APIError 为传输层统一归一化后的错误。
type APIError struct {
	Code      string
	Message   string
	Status    int // 0 表示未收到任何响应
	Retryable bool
	Details   interface{}
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("transport: %s (status=%d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("transport: %s: %s", e.Code, e.Message)
}

// retryableStatuses 为可重试的 HTTP 状态码集合，其余非 2xx 一律视为终态失败。
var retryableStatuses = map[int]bool{
	408: true,
	429: true,
	500: true,
	502: true,
	503: true,
	504: true,
}

// IsRetryable 判断错误是否可重试。
func IsRetryable(err error) bool {
	apiErr, ok := err.(*APIError)
	if !ok {
		return false
	}
	return apiErr.Retryable
}
