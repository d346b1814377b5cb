package config

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// Config 聚合 SDK 运行所需的全部配置项。
type Config struct {
	Client  ClientConfig  `mapstructure:"client"`
	Signer  SignerConfig  `mapstructure:"signer"`
	Journal JournalConfig `mapstructure:"journal"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ClientConfig 描述与 Lighter 网关的连接信息。
type ClientConfig struct {
	Network   string        `mapstructure:"network"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	AuthToken string        `mapstructure:"auth_token"`
	Retry     RetryConfig   `mapstructure:"retry"`
}

// RetryConfig 统一控制重试机制。
type RetryConfig struct {
	MaxRetries int           `mapstructure:"max_retries"`
	BaseDelay  time.Duration `mapstructure:"base_delay"`
}

// SignerConfig 描述签名账户参数。私钥留空时仅启用只读接口。
type SignerConfig struct {
	PrivateKey   string `mapstructure:"private_key"`
	AccountIndex int64  `mapstructure:"account_index"`
	ChainID      int64  `mapstructure:"chain_id"`
}

// JournalConfig 管理本地提交流水数据库。
type JournalConfig struct {
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	InMemory        bool          `mapstructure:"in_memory"`
}

// LoggingConfig 控制日志输出。
type LoggingConfig struct {
	Level            string   `mapstructure:"level"`
	Encoding         string   `mapstructure:"encoding"`
	Development      bool     `mapstructure:"development"`
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

// ResolveBaseURL 返回最终网关地址，显式 base_url 优先于 network 预设。
func (c ClientConfig) ResolveBaseURL() (string, error) {
	if c.BaseURL != "" {
		return c.BaseURL, nil
	}
	url, ok := defaultBaseURLs[c.Network]
	if !ok {
		return "", fmt.Errorf("未知网络 %q，且未配置 client.base_url", c.Network)
	}
	return url, nil
}

// Validate 对配置进行基本校验。
func (c *Config) Validate() error {
	var err error

	if c.Client.Network == "" && c.Client.BaseURL == "" {
		err = multierr.Append(err, errors.New("client.network 与 client.base_url 不能同时为空"))
	}
	if c.Client.Network != "" && c.Client.BaseURL == "" {
		if _, ok := defaultBaseURLs[c.Client.Network]; !ok {
			err = multierr.Append(err, fmt.Errorf("client.network %q 不受支持", c.Client.Network))
		}
	}
	if c.Client.Timeout <= 0 {
		err = multierr.Append(err, errors.New("client.timeout 必须大于0"))
	}
	if c.Client.Retry.MaxRetries < 0 {
		err = multierr.Append(err, errors.New("client.retry.max_retries 不能为负"))
	}
	if c.Client.Retry.BaseDelay <= 0 {
		err = multierr.Append(err, errors.New("client.retry.base_delay 必须为正"))
	}
	if c.Signer.PrivateKey != "" {
		if c.Signer.AccountIndex < 0 {
			err = multierr.Append(err, errors.New("signer.account_index 不能为负"))
		}
		if c.Signer.ChainID <= 0 {
			err = multierr.Append(err, errors.New("signer.chain_id 必须大于0"))
		}
	}
	if c.Journal.Path == "" && !c.Journal.InMemory {
		err = multierr.Append(err, errors.New("journal.path 不能为空"))
	}
	if c.Journal.MaxOpenConns <= 0 {
		err = multierr.Append(err, errors.New("journal.max_open_conns 必须大于0"))
	}
	if c.Journal.MaxIdleConns < 0 {
		err = multierr.Append(err, errors.New("journal.max_idle_conns 不能为负"))
	}
	if c.Journal.ConnMaxLifetime < 0 {
		err = multierr.Append(err, errors.New("journal.conn_max_lifetime 不能为负"))
	}
	if c.Logging.Level == "" {
		err = multierr.Append(err, errors.New("logging.level 不能为空"))
	}
	if c.Logging.Encoding == "" {
		err = multierr.Append(err, errors.New("logging.encoding 不能为空"))
	}
	if len(c.Logging.OutputPaths) == 0 {
		err = multierr.Append(err, errors.New("logging.output_paths 至少包含一个输出目标"))
	}
	if len(c.Logging.ErrorOutputPaths) == 0 {
		err = multierr.Append(err, errors.New("logging.error_output_paths 至少包含一个输出目标"))
	}

	if err != nil {
		return fmt.Errorf("配置校验失败: %w", err)
	}

	return nil
}
