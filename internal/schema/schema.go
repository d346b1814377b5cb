package schema

import (
	"fmt"

	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// Kind 标识交易类型。
type Kind string

const (
	KindCreateOrder Kind = "create_order"
	KindCancelOrder Kind = "cancel_order"
	KindDeposit     Kind = "deposit"
	KindWithdraw    Kind = "withdraw"
	KindTransfer    Kind = "transfer"
)

// PrimaryType 为签名结构体名称，是签名域的一部分，不可变更。
const PrimaryType = "Transaction"

// ErrUnknownKind 表示交易类型未注册。未知类型必须显式失败，
// 回退到仅签固定字段会产生覆盖不完整的签名。
type ErrUnknownKind struct {
	Kind Kind
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("schema: 未注册的交易类型 %q", e.Kind)
}

// baseFields 为所有交易共享的固定前缀，顺序与类型标签构成签名域的一部分。
var baseFields = []apitypes.Type{
	{Name: "tx_type", Type: "string"},
	{Name: "account_index", Type: "uint256"},
	{Name: "nonce", Type: "uint256"},
}

// kindFields 为各交易类型专属字段，按声明顺序参与签名。
var kindFields = map[Kind][]apitypes.Type{
	KindCreateOrder: {
		{Name: "market_id", Type: "uint256"},
		{Name: "side", Type: "string"},
		{Name: "type", Type: "string"},
		{Name: "time_in_force", Type: "string"},
		{Name: "price", Type: "string"},
		{Name: "size", Type: "string"},
		{Name: "client_order_id", Type: "string"},
	},
	KindCancelOrder: {
		{Name: "order_nonce", Type: "uint256"},
		{Name: "market_id", Type: "uint256"},
	},
	KindDeposit: {
		{Name: "amount", Type: "string"},
		{Name: "token", Type: "string"},
	},
	KindWithdraw: {
		{Name: "amount", Type: "string"},
		{Name: "token", Type: "string"},
		{Name: "recipient", Type: "string"},
	},
	KindTransfer: {
		{Name: "amount", Type: "string"},
		{Name: "token", Type: "string"},
		{Name: "to_account_index", Type: "uint256"},
	},
}

// For 返回指定交易类型的完整有序字段表（固定前缀 + 专属字段）。
func For(kind Kind) ([]apitypes.Type, error) {
	extra, ok := kindFields[kind]
	if !ok {
		return nil, &ErrUnknownKind{Kind: kind}
	}

	fields := make([]apitypes.Type, 0, len(baseFields)+len(extra))
	fields = append(fields, baseFields...)
	fields = append(fields, extra...)
	return fields, nil
}

// Kinds 返回全部已注册的交易类型。
func Kinds() []Kind {
	return []Kind{KindCreateOrder, KindCancelOrder, KindDeposit, KindWithdraw, KindTransfer}
}
