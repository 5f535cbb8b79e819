package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config 运行时配置，全部来自环境变量
type Config struct {
	Server  ServerConfig
	Upload  UploadConfig
	Convert ConvertConfig
	Logging LoggingConfig
}

// ServerConfig HTTP 服务参数
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// UploadConfig 上传相关参数
type UploadConfig struct {
	MaxBytes int64         // 单文件上限
	Dir      string        // 上传暂存目录(DWG 转换需要落盘)
	TTL      time.Duration // 登记条目保活时间，0 不过期
}

// ConvertConfig 外部 DWG 转换器参数
type ConvertConfig struct {
	Path    string
	Timeout time.Duration
}

// LoggingConfig 结构化日志配置
type LoggingConfig struct {
	Level  slog.Level
	Format string
}

const (
	defaultPort            = "8080"
	defaultReadTimeout     = 30 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultShutdownTimeout = 5 * time.Second

	defaultUploadMaxBytes = 50 << 20 // 50MB
	defaultUploadDir      = "/tmp/uploads"

	defaultConvertTimeout = 30 * time.Second

	defaultLogFormat = "json"
)

// Load 从环境变量读取配置，缺省使用默认值
func Load() (Config, error) {
	port := getEnv("PORT", "")
	if port == "" {
		port = getEnv("SERVER_PORT", defaultPort)
	}

	cfg := Config{
		Server: ServerConfig{
			Port:            port,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Upload: UploadConfig{
			MaxBytes: defaultUploadMaxBytes,
			Dir:      getEnv("UPLOAD_DIR", defaultUploadDir),
		},
		Convert: ConvertConfig{
			Path:    os.Getenv("ODA_CONVERTER_PATH"),
			Timeout: defaultConvertTimeout,
		},
		Logging: LoggingConfig{
			Level:  slog.LevelInfo,
			Format: getEnv("LOG_FORMAT", defaultLogFormat),
		},
	}

	if v := os.Getenv("SERVER_READ_TIMEOUT_SECONDS"); v != "" {
		d, err := parseSeconds(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SERVER_READ_TIMEOUT_SECONDS: %w", err)
		}
		cfg.Server.ReadTimeout = d
	}

	if v := os.Getenv("SERVER_WRITE_TIMEOUT_SECONDS"); v != "" {
		d, err := parseSeconds(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT_SECONDS: %w", err)
		}
		cfg.Server.WriteTimeout = d
	}

	if v := os.Getenv("SERVER_SHUTDOWN_TIMEOUT_SECONDS"); v != "" {
		d, err := parseSeconds(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SERVER_SHUTDOWN_TIMEOUT_SECONDS: %w", err)
		}
		cfg.Server.ShutdownTimeout = d
	}

	if v := os.Getenv("UPLOAD_MAX_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid UPLOAD_MAX_BYTES: %q", v)
		}
		cfg.Upload.MaxBytes = n
	}

	if v := os.Getenv("FILE_TTL_SECONDS"); v != "" {
		d, err := parseSeconds(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FILE_TTL_SECONDS: %w", err)
		}
		cfg.Upload.TTL = d
	}

	if v := os.Getenv("CONVERT_TIMEOUT_SECONDS"); v != "" {
		d, err := parseSeconds(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CONVERT_TIMEOUT_SECONDS: %w", err)
		}
		cfg.Convert.Timeout = d
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level, err := parseLevel(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Logging.Level = level
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseSeconds(v string) (time.Duration, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("expected positive integer seconds, got %q", v)
	}
	return time.Duration(n) * time.Second, nil
}

func parseLevel(v string) (slog.Level, error) {
	switch v {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unsupported LOG_LEVEL: %q", v)
	}
}
