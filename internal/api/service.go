package api

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Overview 聚合网关状态、全局参数与订单簿元数据。
type Overview struct {
	Status      *StatusResponse
	Info        *InfoResponse
	OrderBooks  []OrderBookMetadata
	RetrievedAt time.Time
}

// OverviewService 并发拉取一次交易所概览。
type OverviewService struct {
	root   *RootAPI
	order  *OrderAPI
	logger *zap.Logger
}

// NewOverviewService 创建概览服务。
func NewOverviewService(root *RootAPI, order *OrderAPI, logger *zap.Logger) *OverviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OverviewService{
		root:   root,
		order:  order,
		logger: logger,
	}
}

// Get 并发拉取状态、参数与订单簿，任一失败则整体失败。
func (s *OverviewService) Get(ctx context.Context) (Overview, error) {
	var (
		status *StatusResponse
		info   *InfoResponse
		books  *OrderBooksResponse
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		data, err := s.root.Status(groupCtx)
		if err != nil {
			return err
		}
		status = data
		return nil
	})

	group.Go(func() error {
		data, err := s.root.Info(groupCtx)
		if err != nil {
			return err
		}
		info = data
		return nil
	})

	group.Go(func() error {
		data, err := s.order.OrderBooks(groupCtx, nil)
		if err != nil {
			return err
		}
		books = data
		return nil
	})

	if err := group.Wait(); err != nil {
		return Overview{}, err
	}

	overview := Overview{
		Status:      status,
		Info:        info,
		RetrievedAt: time.Now().UTC(),
	}
	if books != nil {
		overview.OrderBooks = books.OrderBooks
	}

	s.logger.Debug("已拉取交易所概览",
		zap.String("status", status.Status),
		zap.Int("order_books", len(overview.OrderBooks)),
	)

	return overview, nil
}
