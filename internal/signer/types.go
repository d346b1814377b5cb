package signer

import "lighter-go/internal/schema"

// SignableTransaction 为待签名交易。构造后不再修改。
type SignableTransaction struct {
	TxType       schema.Kind            `json:"tx_type"`
	AccountIndex int64                  `json:"account_index"`
	Payload      map[string]interface{} `json:"payload"`
	Nonce        uint64                 `json:"nonce"`
}

// SignedTransaction 为附带签名的交易，即 /sendTx 的请求体。
type SignedTransaction struct {
	SignableTransaction
	Signature string `json:"signature"`
}
