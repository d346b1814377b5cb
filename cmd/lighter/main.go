package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"lighter-go/internal/client"
	"lighter-go/internal/config"
	"lighter-go/internal/log"
	"lighter-go/internal/store"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "配置文件路径，默认使用 configs/config.yaml")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger, err := log.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	journal, err := store.Open(cfg.Journal)
	if err != nil {
		logger.Error("初始化提交流水库失败", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if closeErr := journal.Close(); closeErr != nil {
			logger.Warn("关闭提交流水库失败", zap.Error(closeErr))
		}
	}()

	lighterClient, err := client.New(cfg.Client, logger)
	if err != nil {
		logger.Error("初始化客户端失败", zap.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	overview, err := lighterClient.Overview.Get(ctx)
	if err != nil {
		logger.Error("拉取交易所概览失败", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("网关连接正常",
		zap.String("status", overview.Status.Status),
		zap.String("version", overview.Status.Version),
		zap.Int("order_books", len(overview.OrderBooks)),
	)

	if cfg.Signer.PrivateKey != "" {
		signerClient, err := lighterClient.NewSignerClient(cfg.Signer, journal)
		if err != nil {
			logger.Error("初始化签名客户端失败", zap.Error(err))
			os.Exit(1)
		}

		nextNonce, err := signerClient.SyncNonce(ctx)
		if err != nil {
			logger.Error("同步 nonce 失败", zap.Error(err))
			os.Exit(1)
		}

		logger.Info("签名账户就绪",
			zap.String("address", signerClient.Address().Hex()),
			zap.Int64("account_index", signerClient.AccountIndex()),
			zap.Uint64("next_nonce", nextNonce),
		)
	}

	logger.Info("客户端已退出")
}
