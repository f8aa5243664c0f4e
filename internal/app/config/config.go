package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Models ModelsConfig `mapstructure:"models"`
}

type AppConfig struct {
	Name     string `mapstructure:"name" validate:"required"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

type ServerConfig struct {
	Port string `mapstructure:"port" validate:"omitempty,numeric"`
}

// ModelsConfig 三个预测任务各自的制品路径
// 路径指向的文件缺失属于启动时加载失败，不在配置校验范围内
type ModelsConfig struct {
	Price    ArtifactConfig `mapstructure:"price"`
	Profit   ArtifactConfig `mapstructure:"profit"`
	Duration ArtifactConfig `mapstructure:"duration"`
}

// ArtifactConfig 模型/编码器制品对
type ArtifactConfig struct {
	ModelPath   string `mapstructure:"model_path"`
	EncoderPath string `mapstructure:"encoder_path"`
}

// Load 从配置文件加载配置
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	// 兼容性处理：如果 server.port 为空，使用默认值
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8050"
	}

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate 验证配置完整性
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// GetServerPort 获取服务端口
func (c *Config) GetServerPort() string {
	if c.Server.Port != "" {
		return c.Server.Port
	}
	return "8050"
}
