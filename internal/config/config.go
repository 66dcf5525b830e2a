package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/viper"
)

// 用于管理应用配置

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Limit     LimitConfig     `mapstructure:"limit"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
}

type UploadConfig struct {
	Path         string `mapstructure:"path"`
	URLPrefix    string `mapstructure:"url_prefix"`
	CacheControl string `mapstructure:"cache_control"`
}

type LimitConfig struct {
	BodyMaxMB int `mapstructure:"body_max_mb"`
}

type RateLimitConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	AuthRPS     float64 `mapstructure:"auth_rps"`
	AuthBurst   int     `mapstructure:"auth_burst"`
	UploadRPS   float64 `mapstructure:"upload_rps"`
	UploadBurst int     `mapstructure:"upload_burst"`
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	log.Println("✅ 配置加载成功")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 设置默认值
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/steak_log.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "steak_log")
	v.SetDefault("database.ssl", false)
	v.SetDefault("upload.path", "uploads")
	v.SetDefault("upload.url_prefix", "/uploads/")
	v.SetDefault("upload.cache_control", "public, max-age=86400")
	v.SetDefault("limit.body_max_mb", 20)
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.auth_rps", 5)
	v.SetDefault("rate_limit.auth_burst", 10)
	v.SetDefault("rate_limit.upload_rps", 2)
	v.SetDefault("rate_limit.upload_burst", 5)

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			log.Fatalf("❌ 读取配置文件失败: %v", err)
		}
	}

	// 配置环境变量覆盖
	// 规则：所有环境变量必须以 STEAK_LOG_ 开头
	// 例如：yaml 中的 server.port 对应环境变量 STEAK_LOG_SERVER_PORT
	v.SetEnvPrefix("STEAK_LOG")

	// 允许自动查找环境变量
	v.AutomaticEnv()

	// 解决层级分隔符问题：将 key 中的 "." 替换为 "_"
	// 这样 server.port 才能匹配 SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 初始加载配置
	return v
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) {
	// 加写锁，防止并发重载时的竞争
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	// 将配置映射到结构体
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("❌ 配置解析失败: %v", err)
		return
	}

	// 原子替换全局配置
	appConfig.Store(&tempConfig)
	log.Println("✅ 配置已更新")
}
