package signer

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"lighter-go/internal/schema"
)

const (
	domainName    = "Lighter"
	domainVersion = "1"

	// DefaultChainID 在调用方未指定时生效。
	DefaultChainID int64 = 1
)

// Signer 持有账户私钥，按交易类型的字段表构造 EIP-712 摘要并签名。
// 签名域绑定协议名、版本与链 ID，跨链或跨协议不可重放。
type Signer struct {
	privateKey *ecdsa.PrivateKey
	domain     apitypes.TypedDataDomain
}

// New 由十六进制私钥创建签名器。chainID <= 0 时使用 DefaultChainID。
func New(privateKeyHex string, chainID int64) (*Signer, error) {
	privateKeyHex = strings.TrimPrefix(privateKeyHex, "0x")

	privateKey, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("解析私钥失败: %w", err)
	}

	if chainID <= 0 {
		chainID = DefaultChainID
	}

	return &Signer{
		privateKey: privateKey,
		domain: apitypes.TypedDataDomain{
			Name:    domainName,
			Version: domainVersion,
			ChainId: math.NewHexOrDecimal256(chainID),
		},
	}, nil
}

// Address 返回私钥对应的以太坊地址。
func (s *Signer) Address() common.Address {
	return crypto.PubkeyToAddress(s.privateKey.PublicKey)
}

// SignTransaction 对交易签名并返回附带签名的副本。
// 仅字段表内的值参与签名：payload 中多余的键不会进入摘要，
// 避免未签名数据搭便车；字段表要求而 payload 缺失的键则直接报错。
func (s *Signer) SignTransaction(tx SignableTransaction) (SignedTransaction, error) {
	fields, err := schema.For(tx.TxType)
	if err != nil {
		return SignedTransaction{}, err
	}

	message := apitypes.TypedDataMessage{}
	for _, field := range fields {
		var raw interface{}
		switch field.Name {
		case "tx_type":
			raw = string(tx.TxType)
		case "account_index":
			raw = tx.AccountIndex
		case "nonce":
			raw = tx.Nonce
		default:
			value, ok := tx.Payload[field.Name]
			if !ok {
				return SignedTransaction{}, fmt.Errorf("signer: 交易 %s 缺少字段 %q", tx.TxType, field.Name)
			}
			raw = value
		}

		encoded, err := encodeFieldValue(field, raw)
		if err != nil {
			return SignedTransaction{}, err
		}
		message[field.Name] = encoded
	}

	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
			},
			schema.PrimaryType: fields,
		},
		PrimaryType: schema.PrimaryType,
		Domain:      s.domain,
		Message:     message,
	}

	signature, err := s.signTypedData(typedData)
	if err != nil {
		return SignedTransaction{}, err
	}

	return SignedTransaction{
		SignableTransaction: tx,
		Signature:           signature,
	}, nil
}

// SignMessage 以 personal-message 方案对任意消息签名，用于带外认证，
// 与交易签名使用不同的摘要格式。
func (s *Signer) SignMessage(message string) (string, error) {
	digest := accounts.TextHash([]byte(message))

	signature, err := crypto.Sign(digest, s.privateKey)
	if err != nil {
		return "", fmt.Errorf("签名失败: %w", err)
	}
	signature[64] += 27

	return hexutil.Encode(signature), nil
}

func (s *Signer) signTypedData(typedData apitypes.TypedData) (string, error) {
	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return "", fmt.Errorf("计算域分隔哈希失败: %w", err)
	}

	messageHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return "", fmt.Errorf("计算消息哈希失败: %w", err)
	}

	rawData := []byte{0x19, 0x01}
	rawData = append(rawData, domainSeparator...)
	rawData = append(rawData, messageHash...)
	digest := crypto.Keccak256Hash(rawData)

	signature, err := crypto.Sign(digest.Bytes(), s.privateKey)
	if err != nil {
		return "", fmt.Errorf("签名失败: %w", err)
	}
	signature[64] += 27

	return hexutil.Encode(signature), nil
}

// encodeFieldValue 将调用方给出的值规整为 apitypes 可编码的形式。
func encodeFieldValue(field apitypes.Type, raw interface{}) (interface{}, error) {
	switch field.Type {
	case "string":
		value, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("signer: 字段 %q 需要字符串，实际为 %T", field.Name, raw)
		}
		return value, nil
	case "uint256":
		return encodeUint256(field.Name, raw)
	default:
		return nil, fmt.Errorf("signer: 字段 %q 使用了不支持的类型 %q", field.Name, field.Type)
	}
}

func encodeUint256(name string, raw interface{}) (string, error) {
	switch v := raw.(type) {
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		if v != float64(int64(v)) {
			return "", fmt.Errorf("signer: 字段 %q 需要整数，实际为 %v", name, v)
		}
		return strconv.FormatInt(int64(v), 10), nil
	case string:
		if _, ok := new(big.Int).SetString(v, 10); !ok {
			return "", fmt.Errorf("signer: 字段 %q 不是合法整数: %q", name, v)
		}
		return v, nil
	case *big.Int:
		return v.String(), nil
	default:
		return "", fmt.Errorf("signer: 字段 %q 需要整数，实际为 %T", name, raw)
	}
}
