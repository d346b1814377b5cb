package submit

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lighter-go/internal/schema"
	"lighter-go/internal/signer"
	"lighter-go/internal/store"
	"lighter-go/internal/transport"
)

const (
	sendTxPath      = "/api/v1/sendTx"
	sendTxBatchPath = "/api/v1/sendTxBatch"
)

// Recorder 记录提交流水，由 store.Journal 实现。可为 nil。
type Recorder interface {
	Record(ctx context.Context, entry store.Entry) error
}

// Submitter 将交易意图串成完整提交链路：签发 nonce、按字段表签名、
// 经传输层投递，并把结果写入本地流水。
//
// 五种交易类型的流程完全一致，仅字段集不同。参数校验先于 nonce 签发；
// 签名或投递失败时，已签发的 nonce 不会回收，远端序列留下无害空洞。
type Submitter struct {
	tp           *transport.Client
	signer       *signer.Signer
	sequencer    nonceSequencer
	journal      Recorder
	accountIndex int64
	logger       *zap.Logger
}

// nonceSequencer 抽象发号器，便于测试替换。
type nonceSequencer interface {
	Issue(ctx context.Context) (uint64, error)
}

// New 创建交易提交器。journal 可为 nil，表示不落地流水。
func New(tp *transport.Client, sg *signer.Signer, seq nonceSequencer, journal Recorder, accountIndex int64, logger *zap.Logger) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{
		tp:           tp,
		signer:       sg,
		sequencer:    seq,
		journal:      journal,
		accountIndex: accountIndex,
		logger:       logger,
	}
}

// CreateOrder 提交限价/市价委托。
func (s *Submitter) CreateOrder(ctx context.Context, params CreateOrderParams) (*SendTxResponse, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	payload := map[string]interface{}{
		"market_id":       params.MarketID,
		"side":            params.Side,
		"type":            params.Type,
		"time_in_force":   params.TimeInForce,
		"price":           params.Price,
		"size":            params.Size,
		"client_order_id": params.ClientOrderID,
	}
	return s.submit(ctx, schema.KindCreateOrder, payload)
}

// CancelOrder 撤销指定委托。
func (s *Submitter) CancelOrder(ctx context.Context, params CancelOrderParams) (*SendTxResponse, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	payload := map[string]interface{}{
		"order_nonce": params.OrderNonce,
		"market_id":   params.MarketID,
	}
	return s.submit(ctx, schema.KindCancelOrder, payload)
}

// Deposit 提交充值。
func (s *Submitter) Deposit(ctx context.Context, params DepositParams) (*SendTxResponse, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	payload := map[string]interface{}{
		"amount": params.Amount,
		"token":  params.Token,
	}
	return s.submit(ctx, schema.KindDeposit, payload)
}

// Withdraw 提交提现。
func (s *Submitter) Withdraw(ctx context.Context, params WithdrawParams) (*SendTxResponse, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	payload := map[string]interface{}{
		"amount":    params.Amount,
		"token":     params.Token,
		"recipient": params.Recipient,
	}
	return s.submit(ctx, schema.KindWithdraw, payload)
}

// Transfer 提交账户间划转。
func (s *Submitter) Transfer(ctx context.Context, params TransferParams) (*SendTxResponse, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	payload := map[string]interface{}{
		"amount":           params.Amount,
		"token":            params.Token,
		"to_account_index": params.ToAccountIndex,
	}
	return s.submit(ctx, schema.KindTransfer, payload)
}

// SignTransaction 签发 nonce 并签名但不提交，供批量提交方构造交易。
// 调用方必须保证签名后的交易最终送达，否则对应 nonce 成为空洞。
func (s *Submitter) SignTransaction(ctx context.Context, kind schema.Kind, payload map[string]interface{}) (signer.SignedTransaction, error) {
	issued, err := s.sequencer.Issue(ctx)
	if err != nil {
		return signer.SignedTransaction{}, fmt.Errorf("签发 nonce 失败: %w", err)
	}

	tx := signer.SignableTransaction{
		TxType:       kind,
		AccountIndex: s.accountIndex,
		Payload:      payload,
		Nonce:        issued,
	}

	signed, err := s.signer.SignTransaction(tx)
	if err != nil {
		s.logger.Error("交易签名失败，nonce 已签发且不回收",
			zap.String("tx_type", string(kind)),
			zap.Uint64("nonce", issued),
			zap.Error(err),
		)
		return signer.SignedTransaction{}, err
	}

	return signed, nil
}

// SubmitBatch 整批提交已签名交易。重试策略作用于整个批次，
// 不做逐笔重试。
func (s *Submitter) SubmitBatch(ctx context.Context, txs []signer.SignedTransaction) (*SendTxBatchResponse, error) {
	if len(txs) == 0 {
		return nil, fmt.Errorf("submit: 批量提交不能为空")
	}

	body := map[string]interface{}{
		"transactions": txs,
	}

	var resp SendTxBatchResponse
	if err := s.tp.Post(ctx, sendTxBatchPath, body, &resp); err != nil {
		return nil, err
	}

	for i, tx := range txs {
		status := "pending"
		txHash := ""
		if i < len(resp.Transactions) {
			status = resp.Transactions[i].Status
			txHash = resp.Transactions[i].TxHash
		}
		s.record(ctx, store.Entry{
			TxHash:       txHash,
			TxType:       string(tx.TxType),
			AccountIndex: tx.AccountIndex,
			Nonce:        tx.Nonce,
			Status:       status,
		})
	}

	s.logger.Info("批量交易已提交",
		zap.String("batch_id", resp.BatchID),
		zap.Int("count", len(txs)),
		zap.Int("failed", len(resp.Failed)),
	)

	return &resp, nil
}

func (s *Submitter) submit(ctx context.Context, kind schema.Kind, payload map[string]interface{}) (*SendTxResponse, error) {
	signed, err := s.SignTransaction(ctx, kind, payload)
	if err != nil {
		return nil, err
	}

	var resp SendTxResponse
	if err := s.tp.Post(ctx, sendTxPath, signed, &resp); err != nil {
		s.logger.Error("交易提交失败",
			zap.String("tx_type", string(kind)),
			zap.Uint64("nonce", signed.Nonce),
			zap.Error(err),
		)
		return nil, err
	}

	s.record(ctx, store.Entry{
		TxHash:       resp.TxHash,
		TxType:       string(kind),
		AccountIndex: s.accountIndex,
		Nonce:        signed.Nonce,
		Status:       resp.Status,
	})

	s.logger.Info("交易已提交",
		zap.String("tx_type", string(kind)),
		zap.Uint64("nonce", signed.Nonce),
		zap.String("tx_hash", resp.TxHash),
		zap.String("status", resp.Status),
	)

	return &resp, nil
}

// record 尽力而为地写流水，失败只告警不影响提交结果。
func (s *Submitter) record(ctx context.Context, entry store.Entry) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(ctx, entry); err != nil {
		s.logger.Warn("写入提交流水失败", zap.Error(err))
	}
}
