package api

import (
	"context"
	"net/url"

	"lighter-go/internal/transport"
)

// MarketAPI 封装行情接口。
type MarketAPI struct {
	client *transport.Client
}

// NewMarketAPI 创建行情接口包装。
func NewMarketAPI(client *transport.Client) *MarketAPI {
	return &MarketAPI{client: client}
}

// Candlesticks 查询K线。
func (a *MarketAPI) Candlesticks(ctx context.Context, req CandlesticksRequest) (*CandlesticksResponse, error) {
	q := url.Values{}
	setInt64(q, "market_id", req.MarketID)
	setString(q, "interval", req.Interval)
	setPositive(q, "start_time", req.StartTime)
	setPositive(q, "end_time", req.EndTime)
	setPositive(q, "limit", int64(req.Limit))

	var resp CandlesticksResponse
	if err := a.client.Get(ctx, basePath+"/candlesticks", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Fundings 查询历史资金费率。
func (a *MarketAPI) Fundings(ctx context.Context, req FundingsRequest) (*FundingsResponse, error) {
	q := url.Values{}
	setInt64(q, "market_id", req.MarketID)
	setPositive(q, "start_time", req.StartTime)
	setPositive(q, "end_time", req.EndTime)
	setPositive(q, "limit", int64(req.Limit))

	var resp FundingsResponse
	if err := a.client.Get(ctx, basePath+"/fundings", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FundingRates 查询当前资金费率。marketID 为 nil 时返回全部市场。
func (a *MarketAPI) FundingRates(ctx context.Context, marketID *int64) (*FundingRatesResponse, error) {
	q := url.Values{}
	setOptInt64(q, "market_id", marketID)

	var resp FundingRatesResponse
	if err := a.client.Get(ctx, basePath+"/funding-rates", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FastBridgeInfo 查询跨链桥信息。
func (a *MarketAPI) FastBridgeInfo(ctx context.Context, fromChain, toChain string) (*FastBridgeInfoResponse, error) {
	q := url.Values{}
	setString(q, "from_chain", fromChain)
	setString(q, "to_chain", toChain)

	var resp FastBridgeInfoResponse
	if err := a.client.Get(ctx, basePath+"/fastbridge_info", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
