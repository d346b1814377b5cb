package config

import (
	"errors"
	"fmt"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	defaultConfigPath = "configs/config.yaml"
	envPrefix         = "lighter"
)

// defaultBaseURLs 为各网络的默认网关地址。
var defaultBaseURLs = map[string]string{
	"mainnet": "https://mainnet.zklighter.elliot.ai",
	"staging": "https://staging.zklighter.elliot.ai",
}

// Load 读取配置文件并结合环境变量返回 Config。
func Load(path string) (*Config, error) {
	v := viper.New()

	if path == "" {
		path = defaultConfigPath
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	replacer := strings.NewReplacer(".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("未找到配置文件 %q: %w", path, err)
		}
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("client.network", "mainnet")
	v.SetDefault("client.base_url", "")
	v.SetDefault("client.timeout", "30s")
	v.SetDefault("client.auth_token", "")
	v.SetDefault("client.retry.max_retries", 3)
	v.SetDefault("client.retry.base_delay", "1s")

	v.SetDefault("signer.private_key", "")
	v.SetDefault("signer.account_index", 0)
	v.SetDefault("signer.chain_id", 1)

	v.SetDefault("journal.path", "data/lighter.db")
	v.SetDefault("journal.max_open_conns", 4)
	v.SetDefault("journal.max_idle_conns", 4)
	v.SetDefault("journal.conn_max_lifetime", "1h")
	v.SetDefault("journal.in_memory", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.encoding", "console")
	v.SetDefault("logging.development", true)
	v.SetDefault("logging.output_paths", []string{"stdout"})
	v.SetDefault("logging.error_output_paths", []string{"stderr"})
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}
