package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultBaseDelay  = time.Second
)

// Config 控制传输层行为。
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
	Headers    map[string]string
}

// Client 负责向网关发起 HTTP 请求，并对瞬时失败做指数退避重试。
//
// 重试对请求方法一视同仁：POST 与 GET 使用同一套策略。对于交易提交这类
// 非幂等操作，若服务端在返回 503 前已实际接受交易，重试会带来重复提交
// 的风险；生产加固方向是仅在连接层失败时重试 POST，或引入幂等键。
// 退避目前不带抖动，同样属于加固项而非行为偏差。
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
	baseDelay  time.Duration
	logger     *zap.Logger

	headerMu sync.RWMutex
	headers  map[string]string
}

// NewClient 创建传输层客户端。
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = defaultMaxRetries
	}
	baseDelay := cfg.BaseDelay
	if baseDelay <= 0 {
		baseDelay = defaultBaseDelay
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		logger:     logger,
		headers:    headers,
	}
}

// BaseURL 返回网关地址。
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetHeader 设置应用于后续所有请求的默认请求头。
func (c *Client) SetHeader(key, value string) {
	c.headerMu.Lock()
	defer c.headerMu.Unlock()
	c.headers[key] = value
}

// RemoveHeader 移除默认请求头。
func (c *Client) RemoveHeader(key string) {
	c.headerMu.Lock()
	defer c.headerMu.Unlock()
	delete(c.headers, key)
}

// Get 发起 GET 请求并将响应解码到 out。
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post 发起 POST 请求并将响应解码到 out。
func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put 发起 PUT 请求并将响应解码到 out。
func (c *Client) Put(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete 发起 DELETE 请求并将响应解码到 out。
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var bodyBytes []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{
				Code:    CodeRequestError,
				Message: fmt.Sprintf("序列化请求体失败: %v", err),
			}
		}
		bodyBytes = data
	}

	operation := method + " " + path
	attempt := 0
	delay := c.baseDelay

	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		attempt++
		start := time.Now()
		respBody, apiErr := c.attempt(ctx, method, path, query, bodyBytes)
		duration := time.Since(start)

		if apiErr == nil {
			if attempt > 1 {
				c.logger.Info("请求重试后成功",
					zap.String("operation", operation),
					zap.Int("attempts", attempt),
					zap.Duration("latency", duration),
				)
			}
			if out == nil || len(respBody) == 0 {
				return nil
			}
			if err := json.Unmarshal(respBody, out); err != nil {
				return &APIError{
					Code:    CodeRequestError,
					Message: fmt.Sprintf("解码响应失败: %v", err),
					Details: string(respBody),
				}
			}
			return nil
		}

		if !apiErr.Retryable || attempt > c.maxRetries {
			c.logger.Error("请求失败",
				zap.String("operation", operation),
				zap.Int("attempts", attempt),
				zap.Duration("latency", duration),
				zap.Error(apiErr),
			)
			return apiErr
		}

		c.logger.Warn("请求失败，等待重试",
			zap.String("operation", operation),
			zap.Int("attempt", attempt),
			zap.Duration("wait", delay),
			zap.Error(apiErr),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
	}
}

// attempt 执行单次 HTTP 请求，失败时返回已分类的 APIError。
func (c *Client) attempt(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, *APIError) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, &APIError{
			Code:    CodeRequestError,
			Message: fmt.Sprintf("构造请求失败: %v", err),
		}
	}

	req.Header.Set("Content-Type", "application/json")
	c.headerMu.RLock()
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	c.headerMu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// 上层主动取消不按网络故障处理，直接透传且不再重试。
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return nil, &APIError{
				Code:    CodeRequestError,
				Message: fmt.Sprintf("请求被取消: %v", err),
			}
		}
		return nil, &APIError{
			Code:      CodeNetworkError,
			Message:   "未收到服务器响应",
			Retryable: true,
			Details:   err.Error(),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{
			Code:      CodeNetworkError,
			Message:   "读取响应失败",
			Retryable: true,
			Details:   err.Error(),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, normalizeHTTPError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// normalizeHTTPError 将非 2xx 响应归一化。可重试性仅由状态码决定，
// 响应体只影响错误内容。
func normalizeHTTPError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Code:      fmt.Sprintf("HTTP_%d", status),
		Message:   http.StatusText(status),
		Status:    status,
		Retryable: retryableStatuses[status],
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Details = parsed
		if code, ok := parsed["code"].(string); ok && code != "" {
			apiErr.Code = code
		}
		if msg, ok := parsed["message"].(string); ok && msg != "" {
			apiErr.Message = msg
		}
	} else if len(body) > 0 {
		apiErr.Details = string(body)
	}

	return apiErr
}
