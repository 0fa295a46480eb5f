package config

import (
	"fmt"
	"os"
	"time"

	viper "github.com/spf13/viper"
)

type Config struct {
	ServerPort          string        `mapstructure:"SERVER_PORT"`
	DbName              string        `mapstructure:"POSTGRES_DB"`
	DbHost              string        `mapstructure:"POSTGRES_HOST"`
	DbPort              string        `mapstructure:"POSTGRES_PORT"`
	DbUser              string        `mapstructure:"POSTGRES_USER"`
	DbPas               string        `mapstructure:"POSTGRES_PASSWORD"`
	RedisAddr           string        `mapstructure:"REDIS_ADDR"`
	AuthTokenKey        string        `mapstructure:"AUTH_TOKEN_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	UploadDir           string        `mapstructure:"UPLOAD_DIR"`
	LowStockThreshold   int           `mapstructure:"LOW_STOCK_THRESHOLD"`
	SeedData            bool          `mapstructure:"SEED_DATA"`
}

// Load 讀取設定並回傳，由呼叫端決定失敗處理方式
// 先讀專案根目錄的 .env，環境變數優先覆蓋
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(fmt.Sprintf("%s/.env", path))
	v.SetConfigType("env")
	v.AutomaticEnv()

	// AutomaticEnv 只會覆蓋已註冊的 key，所有欄位都要有預設值
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("POSTGRES_DB", "")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "")
	v.SetDefault("POSTGRES_PASSWORD", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("AUTH_TOKEN_KEY", "")
	v.SetDefault("ACCESS_TOKEN_DURATION", "24h")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("LOW_STOCK_THRESHOLD", 5)
	v.SetDefault("SEED_DATA", true)

	// .env 不存在時仍可靠環境變數運作
	if _, err := os.Stat(fmt.Sprintf("%s/.env", path)); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cf := &Config{}
	if err := v.Unmarshal(cf); err != nil {
		return nil, err
	}
	if cf.AuthTokenKey == "" {
		return nil, fmt.Errorf("AUTH_TOKEN_KEY is required")
	}
	return cf, nil
}
