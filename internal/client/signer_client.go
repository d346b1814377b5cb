package client

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"lighter-go/internal/config"
	"lighter-go/internal/nonce"
	"lighter-go/internal/signer"
	"lighter-go/internal/submit"
)

// SignerClient 绑定单个账户：持有签名器与 nonce 发号器，
// 并内嵌提交器对外暴露五种交易操作与批量提交。
// 生命周期与所属 Client 会话一致。
type SignerClient struct {
	*submit.Submitter

	signer       *signer.Signer
	sequencer    *nonce.Sequencer
	accountIndex int64
}

func newSignerClient(c *Client, cfg config.SignerConfig, journal submit.Recorder) (*SignerClient, error) {
	if cfg.PrivateKey == "" {
		return nil, fmt.Errorf("client: 未配置 signer.private_key")
	}

	sg, err := signer.New(cfg.PrivateKey, cfg.ChainID)
	if err != nil {
		return nil, fmt.Errorf("创建签名器失败: %w", err)
	}

	seq := nonce.NewSequencer(c.Transaction, cfg.AccountIndex, c.logger)
	sub := submit.New(c.tp, sg, seq, journal, cfg.AccountIndex, c.logger)

	return &SignerClient{
		Submitter:    sub,
		signer:       sg,
		sequencer:    seq,
		accountIndex: cfg.AccountIndex,
	}, nil
}

// Address 返回签名账户的以太坊地址。
func (sc *SignerClient) Address() common.Address {
	return sc.signer.Address()
}

// AccountIndex 返回绑定的账户编号。
func (sc *SignerClient) AccountIndex() int64 {
	return sc.accountIndex
}

// SyncNonce 主动与远端对齐 nonce。
func (sc *SignerClient) SyncNonce(ctx context.Context) (uint64, error) {
	return sc.sequencer.Sync(ctx)
}

// SignMessage 以 personal-message 方案签名任意消息。
func (sc *SignerClient) SignMessage(message string) (string, error) {
	return sc.signer.SignMessage(message)
}
