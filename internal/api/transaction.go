package api

import (
	"context"
	"net/url"

	"lighter-go/internal/transport"
)

// TransactionAPI 封装交易查询接口，提交走 internal/submit。
type TransactionAPI struct {
	client *transport.Client
}

// NewTransactionAPI 创建交易查询接口包装。
func NewTransactionAPI(client *transport.Client) *TransactionAPI {
	return &TransactionAPI{client: client}
}

// NextNonce 查询账户下一可用 nonce。
func (a *TransactionAPI) NextNonce(ctx context.Context, accountIndex int64) (*NextNonceResponse, error) {
	q := url.Values{}
	setInt64(q, "account_index", accountIndex)

	var resp NextNonceResponse
	if err := a.client.Get(ctx, basePath+"/nextNonce", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Transaction 按哈希查询单笔交易。
func (a *TransactionAPI) Transaction(ctx context.Context, txHash string) (*TransactionResponse, error) {
	q := url.Values{}
	q.Set("tx_hash", txHash)

	var resp TransactionResponse
	if err := a.client.Get(ctx, basePath+"/tx", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Transactions 按条件查询交易列表。
func (a *TransactionAPI) Transactions(ctx context.Context, req TxsRequest) (*TxsResponse, error) {
	q := url.Values{}
	setOptInt64(q, "account_index", req.AccountIndex)
	setString(q, "tx_type", req.TxType)
	setPositive(q, "start_time", req.StartTime)
	setPositive(q, "end_time", req.EndTime)
	setPositive(q, "limit", int64(req.Limit))
	setPositive(q, "offset", int64(req.Offset))

	var resp TxsResponse
	if err := a.client.Get(ctx, basePath+"/txs", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logs 查询事件日志。
func (a *TransactionAPI) Logs(ctx context.Context, req LogsRequest) (*LogsResponse, error) {
	q := url.Values{}
	setOptInt64(q, "account_index", req.AccountIndex)
	setOptInt64(q, "market_id", req.MarketID)
	setPositive(q, "start_time", req.StartTime)
	setPositive(q, "end_time", req.EndTime)
	setPositive(q, "limit", int64(req.Limit))
	setPositive(q, "offset", int64(req.Offset))

	var resp LogsResponse
	if err := a.client.Get(ctx, basePath+"/logs", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BlockTransactions 查询指定区块内的交易。
func (a *TransactionAPI) BlockTransactions(ctx context.Context, blockNumber int64) (*BlockTxsResponse, error) {
	q := url.Values{}
	setInt64(q, "block_number", blockNumber)

	var resp BlockTxsResponse
	if err := a.client.Get(ctx, basePath+"/blockTxs", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DepositHistory 查询充值流水。
func (a *TransactionAPI) DepositHistory(ctx context.Context, req HistoryRequest) (*DepositHistoryResponse, error) {
	var resp DepositHistoryResponse
	if err := a.client.Get(ctx, basePath+"/deposit_history", historyQuery(req), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// WithdrawHistory 查询提现流水。
func (a *TransactionAPI) WithdrawHistory(ctx context.Context, req HistoryRequest) (*WithdrawHistoryResponse, error) {
	var resp WithdrawHistoryResponse
	if err := a.client.Get(ctx, basePath+"/withdraw_history", historyQuery(req), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TransferHistory 查询划转流水。
func (a *TransactionAPI) TransferHistory(ctx context.Context, req HistoryRequest) (*TransferHistoryResponse, error) {
	var resp TransferHistoryResponse
	if err := a.client.Get(ctx, basePath+"/transfer_history", historyQuery(req), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func historyQuery(req HistoryRequest) url.Values {
	q := url.Values{}
	setInt64(q, "account_index", req.AccountIndex)
	setPositive(q, "start_time", req.StartTime)
	setPositive(q, "end_time", req.EndTime)
	setPositive(q, "limit", int64(req.Limit))
	setPositive(q, "offset", int64(req.Offset))
	return q
}
