package submit

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// CreateOrderParams 为下单参数。
type CreateOrderParams struct {
	MarketID      int64
	Side          string // buy | sell
	Type          string // limit | market
	TimeInForce   string // gtc | ioc | fok | post_only
	Price         string
	Size          string
	ClientOrderID string
}

// CancelOrderParams 为撤单参数。
type CancelOrderParams struct {
	OrderNonce uint64
	MarketID   int64
}

// DepositParams 为充值参数。
type DepositParams struct {
	Amount string
	Token  string
}

// WithdrawParams 为提现参数。
type WithdrawParams struct {
	Amount    string
	Token     string
	Recipient string
}

// TransferParams 为账户间划转参数。
type TransferParams struct {
	Amount         string
	Token          string
	ToAccountIndex int64
}

// SendTxResponse 为 /sendTx 响应。
type SendTxResponse struct {
	TxHash    string `json:"tx_hash"`
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// SendTxBatchResponse 为 /sendTxBatch 响应。failed 为被拒绝交易的下标。
type SendTxBatchResponse struct {
	BatchID      string           `json:"batch_id"`
	Transactions []SendTxResponse `json:"transactions"`
	Failed       []int            `json:"failed,omitempty"`
}

var (
	validSides       = map[string]bool{"buy": true, "sell": true}
	validOrderTypes  = map[string]bool{"limit": true, "market": true}
	validTimeInForce = map[string]bool{"gtc": true, "ioc": true, "fok": true, "post_only": true}
)

func (p CreateOrderParams) validate() error {
	if p.MarketID < 0 {
		return errors.New("submit: market_id 不能为负")
	}
	if !validSides[p.Side] {
		return fmt.Errorf("submit: 非法买卖方向 %q", p.Side)
	}
	if !validOrderTypes[p.Type] {
		return fmt.Errorf("submit: 非法订单类型 %q", p.Type)
	}
	if !validTimeInForce[p.TimeInForce] {
		return fmt.Errorf("submit: 非法有效期类型 %q", p.TimeInForce)
	}
	if err := validatePositiveDecimal("price", p.Price); err != nil {
		return err
	}
	return validatePositiveDecimal("size", p.Size)
}

func (p CancelOrderParams) validate() error {
	if p.MarketID < 0 {
		return errors.New("submit: market_id 不能为负")
	}
	return nil
}

func (p DepositParams) validate() error {
	if p.Token == "" {
		return errors.New("submit: token 不能为空")
	}
	return validatePositiveDecimal("amount", p.Amount)
}

func (p WithdrawParams) validate() error {
	if p.Token == "" {
		return errors.New("submit: token 不能为空")
	}
	if p.Recipient == "" {
		return errors.New("submit: recipient 不能为空")
	}
	return validatePositiveDecimal("amount", p.Amount)
}

func (p TransferParams) validate() error {
	if p.Token == "" {
		return errors.New("submit: token 不能为空")
	}
	if p.ToAccountIndex < 0 {
		return errors.New("submit: to_account_index 不能为负")
	}
	return validatePositiveDecimal("amount", p.Amount)
}

// validatePositiveDecimal 校验字符串编码的金额为合法正小数。
// 校验发生在签发 nonce 之前，坏参数不会在远端序列留下空洞。
func validatePositiveDecimal(name, value string) error {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("submit: %s 不是合法小数: %q", name, value)
	}
	if d.Sign() <= 0 {
		return fmt.Errorf("submit: %s 必须为正数: %q", name, value)
	}
	return nil
}
