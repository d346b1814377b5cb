package api

import (
	"context"
	"net/url"

	"lighter-go/internal/transport"
)

const explorerPath = basePath + "/explorer"

// ExplorerAPI 封装浏览器查询接口。
type ExplorerAPI struct {
	client *transport.Client
}

// NewExplorerAPI 创建浏览器接口包装。
func NewExplorerAPI(client *transport.Client) *ExplorerAPI {
	return &ExplorerAPI{client: client}
}

// AccountLogs 查询账户事件日志。
func (a *ExplorerAPI) AccountLogs(ctx context.Context, accountIndex int64, limit, offset int) (*ExplorerAccountLogsResponse, error) {
	q := url.Values{}
	setInt64(q, "account_index", accountIndex)
	setPositive(q, "limit", int64(limit))
	setPositive(q, "offset", int64(offset))

	var resp ExplorerAccountLogsResponse
	if err := a.client.Get(ctx, explorerPath+"/account/logs", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AccountPositions 查询账户持仓视图。
func (a *ExplorerAPI) AccountPositions(ctx context.Context, accountIndex int64) (*ExplorerAccountPositionsResponse, error) {
	q := url.Values{}
	setInt64(q, "account_index", accountIndex)

	var resp ExplorerAccountPositionsResponse
	if err := a.client.Get(ctx, explorerPath+"/account/positions", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Batches 查询批次列表。
func (a *ExplorerAPI) Batches(ctx context.Context, limit, offset int) (*ExplorerBatchesResponse, error) {
	q := url.Values{}
	setPositive(q, "limit", int64(limit))
	setPositive(q, "offset", int64(offset))

	var resp ExplorerBatchesResponse
	if err := a.client.Get(ctx, explorerPath+"/batches", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Batch 查询单个批次。
func (a *ExplorerAPI) Batch(ctx context.Context, batchID string) (*ExplorerBatchResponse, error) {
	q := url.Values{}
	q.Set("batch_id", batchID)

	var resp ExplorerBatchResponse
	if err := a.client.Get(ctx, explorerPath+"/batch", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Blocks 查询区块列表。
func (a *ExplorerAPI) Blocks(ctx context.Context, limit, offset int) (*ExplorerBlocksResponse, error) {
	q := url.Values{}
	setPositive(q, "limit", int64(limit))
	setPositive(q, "offset", int64(offset))

	var resp ExplorerBlocksResponse
	if err := a.client.Get(ctx, explorerPath+"/blocks", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Block 查询单个区块。
func (a *ExplorerAPI) Block(ctx context.Context, blockNumber int64) (*ExplorerBlockResponse, error) {
	q := url.Values{}
	setInt64(q, "block_number", blockNumber)

	var resp ExplorerBlockResponse
	if err := a.client.Get(ctx, explorerPath+"/block", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Markets 查询市场列表。
func (a *ExplorerAPI) Markets(ctx context.Context, marketID *int64) (*ExplorerMarketsResponse, error) {
	q := url.Values{}
	setOptInt64(q, "market_id", marketID)

	var resp ExplorerMarketsResponse
	if err := a.client.Get(ctx, explorerPath+"/markets", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search 按关键字检索账户、交易、区块或市场。
func (a *ExplorerAPI) Search(ctx context.Context, query, typ string) (*ExplorerSearchResponse, error) {
	q := url.Values{}
	q.Set("query", query)
	setString(q, "type", typ)

	var resp ExplorerSearchResponse
	if err := a.client.Get(ctx, explorerPath+"/search", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stats 查询全局统计。
func (a *ExplorerAPI) Stats(ctx context.Context, period string) (*ExplorerStatsResponse, error) {
	q := url.Values{}
	setString(q, "period", period)

	var resp ExplorerStatsResponse
	if err := a.client.Get(ctx, explorerPath+"/stats", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
