package nonce

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"lighter-go/internal/api"
)

// Source 提供远端权威的下一 nonce，由交易查询接口实现。
type Source interface {
	NextNonce(ctx context.Context, accountIndex int64) (*api.NextNonceResponse, error)
}

// Sequencer 维护单个账户的本地 nonce 计数器。
//
// Issue 的读取-自增必须互斥：并发提交方各自拿到不同且严格递增的值。
// 已签发但最终未送达的 nonce 不会回收，远端序列允许出现空洞，
// 只要求单调递增。
type Sequencer struct {
	source       Source
	accountIndex int64
	logger       *zap.Logger

	mu     sync.Mutex
	next   uint64
	synced bool

	sf singleflight.Group
}

// NewSequencer 创建账户 nonce 发号器。
func NewSequencer(source Source, accountIndex int64, logger *zap.Logger) *Sequencer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sequencer{
		source:       source,
		accountIndex: accountIndex,
		logger:       logger,
	}
}

// AccountIndex 返回绑定的账户编号。
func (s *Sequencer) AccountIndex() int64 {
	return s.accountIndex
}

// Sync 向远端拉取权威 nonce 并合并到本地。并发的 Sync 会被合并成
// 一次请求。取回的值只增不减：比本地计数小的响应视为过期并丢弃，
// 避免两次同步乱序到达时计数回退造成重复签发。
func (s *Sequencer) Sync(ctx context.Context) (uint64, error) {
	result, err, _ := s.sf.Do("sync", func() (interface{}, error) {
		resp, err := s.source.NextNonce(ctx, s.accountIndex)
		if err != nil {
			return nil, err
		}
		return s.merge(resp.NextNonce), nil
	})
	if err != nil {
		return 0, err
	}
	return result.(uint64), nil
}

func (s *Sequencer) merge(fetched uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.synced || fetched > s.next {
		s.next = fetched
	} else if fetched < s.next {
		s.logger.Warn("忽略过期的 nonce 同步结果",
			zap.Int64("account_index", s.accountIndex),
			zap.Uint64("fetched", fetched),
			zap.Uint64("local", s.next),
		)
	}
	s.synced = true
	return s.next
}

// Issue 签发下一 nonce。首次调用（或尚未同步时）先隐式 Sync。
// 返回当前值并自增，同一发号器签发的值严格递增、无重复。
func (s *Sequencer) Issue(ctx context.Context) (uint64, error) {
	s.mu.Lock()
	if !s.synced {
		s.mu.Unlock()
		if _, err := s.Sync(ctx); err != nil {
			return 0, err
		}
		s.mu.Lock()
	}

	issued := s.next
	s.next++
	s.mu.Unlock()

	return issued, nil
}

// Current 返回本地下一待签发值及是否已同步，仅用于观测。
func (s *Sequencer) Current() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next, s.synced
}
