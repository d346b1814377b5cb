package api

import (
	"context"
	"net/url"

	"lighter-go/internal/transport"
)

// OrderAPI 封装订单簿与成交查询接口。
type OrderAPI struct {
	client *transport.Client
}

// NewOrderAPI 创建订单接口包装。
func NewOrderAPI(client *transport.Client) *OrderAPI {
	return &OrderAPI{client: client}
}

// OrderBooks 查询全部订单簿元数据。
func (a *OrderAPI) OrderBooks(ctx context.Context, marketID *int64) (*OrderBooksResponse, error) {
	q := url.Values{}
	setOptInt64(q, "market_id", marketID)

	var resp OrderBooksResponse
	if err := a.client.Get(ctx, basePath+"/orderBooks", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OrderBookDetails 查询订单簿深度详情。
func (a *OrderAPI) OrderBookDetails(ctx context.Context, marketID int64, depth int) (*OrderBookDetailsResponse, error) {
	q := url.Values{}
	setInt64(q, "market_id", marketID)
	setPositive(q, "depth", int64(depth))

	var resp OrderBookDetailsResponse
	if err := a.client.Get(ctx, basePath+"/orderBookDetails", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RecentTrades 查询市场近期成交。
func (a *OrderAPI) RecentTrades(ctx context.Context, marketID int64, limit int) (*RecentTradesResponse, error) {
	q := url.Values{}
	setInt64(q, "market_id", marketID)
	setPositive(q, "limit", int64(limit))

	var resp RecentTradesResponse
	if err := a.client.Get(ctx, basePath+"/recentTrades", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Trades 按条件查询成交列表。
func (a *OrderAPI) Trades(ctx context.Context, req TradesRequest) (*TradesResponse, error) {
	q := url.Values{}
	setOptInt64(q, "market_id", req.MarketID)
	setOptInt64(q, "account_index", req.AccountIndex)
	setPositive(q, "start_time", req.StartTime)
	setPositive(q, "end_time", req.EndTime)
	setPositive(q, "limit", int64(req.Limit))
	setPositive(q, "offset", int64(req.Offset))

	var resp TradesResponse
	if err := a.client.Get(ctx, basePath+"/trades", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExchangeStats 查询市场统计。
func (a *OrderAPI) ExchangeStats(ctx context.Context, marketID *int64, period string) (*ExchangeStatsResponse, error) {
	q := url.Values{}
	setOptInt64(q, "market_id", marketID)
	setString(q, "period", period)

	var resp ExchangeStatsResponse
	if err := a.client.Get(ctx, basePath+"/exchangeStats", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AccountActiveOrders 查询账户活动委托。
func (a *OrderAPI) AccountActiveOrders(ctx context.Context, req AccountOrdersRequest) (*AccountOrdersResponse, error) {
	var resp AccountOrdersResponse
	if err := a.client.Get(ctx, basePath+"/accountActiveOrders", accountOrdersQuery(req), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AccountInactiveOrders 查询账户历史委托。
func (a *OrderAPI) AccountInactiveOrders(ctx context.Context, req AccountOrdersRequest) (*AccountOrdersResponse, error) {
	var resp AccountOrdersResponse
	if err := a.client.Get(ctx, basePath+"/accountInactiveOrders", accountOrdersQuery(req), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func accountOrdersQuery(req AccountOrdersRequest) url.Values {
	q := url.Values{}
	setInt64(q, "account_index", req.AccountIndex)
	setOptInt64(q, "market_id", req.MarketID)
	setPositive(q, "start_time", req.StartTime)
	setPositive(q, "end_time", req.EndTime)
	setPositive(q, "limit", int64(req.Limit))
	setPositive(q, "offset", int64(req.Offset))
	setString(q, "auth", req.Auth)
	return q
}
