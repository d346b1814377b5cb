package api

import (
	"context"
	"net/url"

	"lighter-go/internal/transport"
)

// AccountAPI 封装账户查询接口。
type AccountAPI struct {
	client *transport.Client
}

// NewAccountAPI 创建账户接口包装。
func NewAccountAPI(client *transport.Client) *AccountAPI {
	return &AccountAPI{client: client}
}

// Account 查询账户详情与持仓。
func (a *AccountAPI) Account(ctx context.Context, accountIndex int64) (*AccountResponse, error) {
	q := url.Values{}
	setInt64(q, "account_index", accountIndex)

	var resp AccountResponse
	if err := a.client.Get(ctx, basePath+"/account", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AccountsByL1Address 查询 L1 地址名下的全部账户。
func (a *AccountAPI) AccountsByL1Address(ctx context.Context, l1Address string) (*AccountsByL1AddressResponse, error) {
	q := url.Values{}
	q.Set("l1_address", l1Address)

	var resp AccountsByL1AddressResponse
	if err := a.client.Get(ctx, basePath+"/accountsByL1Address", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ApiKeys 查询账户的 API Key 列表。
func (a *AccountAPI) ApiKeys(ctx context.Context, accountIndex int64) (*ApiKeysResponse, error) {
	q := url.Values{}
	setInt64(q, "account_index", accountIndex)

	var resp ApiKeysResponse
	if err := a.client.Get(ctx, basePath+"/apikeys", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PnL 查询账户盈亏。
func (a *AccountAPI) PnL(ctx context.Context, req PnLRequest) (*PnLResponse, error) {
	q := url.Values{}
	setInt64(q, "account_index", req.AccountIndex)
	setPositive(q, "start_time", req.StartTime)
	setPositive(q, "end_time", req.EndTime)

	var resp PnLResponse
	if err := a.client.Get(ctx, basePath+"/pnl", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
