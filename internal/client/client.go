package client

import (
	"fmt"

	"go.uber.org/zap"

	"lighter-go/internal/api"
	"lighter-go/internal/config"
	"lighter-go/internal/submit"
	"lighter-go/internal/transport"
)

// Client 为 SDK 门面，聚合共享传输层与各查询接口分组。
type Client struct {
	tp     *transport.Client
	logger *zap.Logger

	Root        *api.RootAPI
	Account     *api.AccountAPI
	Order       *api.OrderAPI
	Market      *api.MarketAPI
	Transaction *api.TransactionAPI
	Explorer    *api.ExplorerAPI
	Overview    *api.OverviewService
}

// New 根据配置创建客户端。
func New(cfg config.ClientConfig, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	baseURL, err := cfg.ResolveBaseURL()
	if err != nil {
		return nil, fmt.Errorf("解析网关地址失败: %w", err)
	}

	tp := transport.NewClient(transport.Config{
		BaseURL:    baseURL,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.Retry.MaxRetries,
		BaseDelay:  cfg.Retry.BaseDelay,
	}, logger)

	c := &Client{
		tp:          tp,
		logger:      logger,
		Root:        api.NewRootAPI(tp),
		Account:     api.NewAccountAPI(tp),
		Order:       api.NewOrderAPI(tp),
		Market:      api.NewMarketAPI(tp),
		Transaction: api.NewTransactionAPI(tp),
		Explorer:    api.NewExplorerAPI(tp),
	}
	c.Overview = api.NewOverviewService(c.Root, c.Order, logger)

	if cfg.AuthToken != "" {
		c.SetAuthToken(cfg.AuthToken)
	}

	return c, nil
}

// Transport 返回共享传输层，签名客户端与提交器复用同一实例。
func (c *Client) Transport() *transport.Client {
	return c.tp
}

// SetAuthToken 为后续所有请求附加 Bearer 认证头。
func (c *Client) SetAuthToken(token string) {
	c.tp.SetHeader("Authorization", "Bearer "+token)
}

// RemoveAuthToken 移除认证头。
func (c *Client) RemoveAuthToken() {
	c.tp.RemoveHeader("Authorization")
}

// NewSignerClient 创建绑定单个账户的签名客户端，复用本客户端的传输层。
// journal 可为 nil。
func (c *Client) NewSignerClient(cfg config.SignerConfig, journal submit.Recorder) (*SignerClient, error) {
	return newSignerClient(c, cfg, journal)
}
