package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ==================== 应用配置 ====================

// Config 应用配置，config.yaml + 环境变量（ADMIN_ 前缀）覆盖
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Captcha  CaptchaConfig  `mapstructure:"captcha"`
	Task     TaskConfig     `mapstructure:"task"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port  string `mapstructure:"port"`
	Debug bool   `mapstructure:"debug"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig Redis 配置，Addr 为空时验证码走内存存储
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey       string        `mapstructure:"secret_key"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
	Issuer          string        `mapstructure:"issuer"`
}

// CaptchaConfig 验证码配置
type CaptchaConfig struct {
	Width   int           `mapstructure:"width"`
	Height  int           `mapstructure:"height"`
	Length  int           `mapstructure:"length"`
	Expires time.Duration `mapstructure:"expires"`
}

// TaskConfig 定时任务配置
type TaskConfig struct {
	CleanupEnabled bool `mapstructure:"cleanup_enabled"`
	LogRetainDays  int  `mapstructure:"log_retain_days"`
}

// Load 读取配置文件并应用环境变量覆盖
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	// 环境变量覆盖：ADMIN_SERVER_PORT -> server.port
	v.SetEnvPrefix("ADMIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// 配置文件缺失时允许纯环境变量/默认值启动
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.debug", false)

	v.SetDefault("database.dsn", "host=localhost user=admin password=admin dbname=admin_scaffold port=5432 sslmode=disable")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("jwt.secret_key", "admin-scaffold-secret-change-in-production")
	v.SetDefault("jwt.access_token_ttl", 2*time.Hour)
	v.SetDefault("jwt.refresh_token_ttl", 7*24*time.Hour)
	v.SetDefault("jwt.issuer", "admin-scaffold")

	v.SetDefault("captcha.width", 120)
	v.SetDefault("captcha.height", 40)
	v.SetDefault("captcha.length", 4)
	v.SetDefault("captcha.expires", 5*time.Minute)

	v.SetDefault("task.cleanup_enabled", true)
	v.SetDefault("task.log_retain_days", 90)
}
