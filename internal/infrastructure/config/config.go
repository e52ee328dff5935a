package config

import (
	"github.com/spf13/viper"

	"github.com/leafmoes/bangumi-catalog/internal/domain/entities"
	"github.com/leafmoes/bangumi-catalog/pkg/logger"
	"github.com/leafmoes/bangumi-catalog/pkg/utils/fileutil"
)

type Config struct {
	Server    ServerConfig     `mapstructure:"server"`
	Log       LogConfig        `mapstructure:"log"`
	Scan      ScanConfig       `mapstructure:"scan"`
	Rules     entities.RuleSet `mapstructure:"rules"`
	Scheduler SchedulerConfig  `mapstructure:"scheduler"`
	Telegram  TelegramConfig   `mapstructure:"telegram"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	QPS  int    `mapstructure:"qps"` // 每秒请求数限制
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

type ScanConfig struct {
	Roots     []string `mapstructure:"roots"`            // 允许扫描的根目录，空表示不限制
	VideoExts []string `mapstructure:"video_extensions"` // 视频扩展名，空表示用内置默认
	DataDir   string   `mapstructure:"data_dir"`         // 任务数据存放目录
}

type SchedulerConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type TelegramConfig struct {
	BotToken string  `mapstructure:"bot_token"`
	ChatIDs  []int64 `mapstructure:"chat_ids"`
	Enabled  bool    `mapstructure:"enabled"`
}

// LoadConfig 从默认搜索路径加载配置
func LoadConfig() (*Config, error) {
	return load("")
}

// LoadConfigFrom 从指定文件加载配置，path 为空时退回默认搜索路径。
// 配置文件缺失或无法解析时告警并回退默认配置，不阻断启动。
func LoadConfigFrom(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Warn("配置文件无法读取，使用默认配置", "path", path, "error", err)
			v = viper.New()
			setDefaults(v)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		logger.Warn("配置文件解析失败，使用默认配置", "path", path, "error", err)
		fresh := viper.New()
		setDefaults(fresh)
		config = Config{}
		if err := fresh.Unmarshal(&config); err != nil {
			return nil, err
		}
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.qps", 50)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "console")

	v.SetDefault("scan.roots", []string{})
	v.SetDefault("scan.video_extensions", []string{})
	v.SetDefault("scan.data_dir", "./data")

	v.SetDefault("scheduler.enabled", false)
	v.SetDefault("telegram.enabled", false)
}

// EffectiveRuleSet 内置默认规则加配置追加项
func (c *Config) EffectiveRuleSet() entities.RuleSet {
	return entities.DefaultRuleSet().Extend(c.Rules)
}

// EffectiveVideoExtensions 配置的视频扩展名，未配置时用内置默认
func (c *Config) EffectiveVideoExtensions() []string {
	if len(c.Scan.VideoExts) > 0 {
		return c.Scan.VideoExts
	}
	return fileutil.DefaultVideoExtensions
}
