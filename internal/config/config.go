package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"pdf-summary-client/internal/domain"
)

const (
	defaultServerPort     = "8080"
	defaultBaseURL        = "http://localhost:8000"
	defaultLogLevel       = "info"
	defaultLocale         = "it-IT"
	defaultRequestTimeout = 120 * time.Second
	defaultMaxFileSize    = 5 * 1024 * 1024 // matches the summarization service limit
	defaultDownloadDir    = "."
	defaultMaxDownload    = 50 * 1024 * 1024
	defaultAllowedOrigins = "http://localhost:3000,http://localhost:5173,http://localhost:8080"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	BaseURL        string
	LogLevel       string
	Locale         string
	RequestTimeout time.Duration
	MaxFileSize    int64
	MaxDownload    int64
	DownloadDir    string
	AllowedOrigins []string
}

// NewConfig creates a configuration from environment variables and defaults only
func NewConfig() domain.Config {
	v := viper.New()
	bindEnv(v)
	return fromViper(v)
}

// Load builds the configuration from v. Values come, in order of precedence,
// from flags bound to v, environment variables, configFile (or
// $HOME/.pdfsummary.yaml when empty) and defaults.
func Load(v *viper.Viper, configFile string) (*AppConfig, error) {
	bindEnv(v)
	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}
	return fromViper(v), nil
}

// envVars lists the environment variables read for each key, first set wins.
var envVars = map[string][]string{
	// Cloud Run (and many PaaS) provide the listening port via PORT.
	// Keep SERVER_PORT for local/dev compatibility.
	"server_port":       {"PORT", "SERVER_PORT"},
	"base_url":          {"BASE_URL"},
	"log_level":         {"LOG_LEVEL"},
	"locale":            {"LOCALE"},
	"request_timeout":   {"REQUEST_TIMEOUT"},
	"max_file_size":     {"MAX_FILE_SIZE"},
	"max_download_size": {"MAX_DOWNLOAD_SIZE"},
	"download_dir":      {"DOWNLOAD_DIR"},
	"allowed_origins":   {"ALLOWED_ORIGINS"},
}

// bindEnv binds every key to its listed variables only. AutomaticEnv would
// map server_port to SERVER_PORT ahead of PORT.
func bindEnv(v *viper.Viper) {
	setDefaults(v)
	for key, vars := range envVars {
		_ = v.BindEnv(append([]string{key}, vars...)...)
	}
}

func fromViper(v *viper.Viper) *AppConfig {
	return &AppConfig{
		ServerPort:     v.GetString("server_port"),
		BaseURL:        strings.TrimRight(v.GetString("base_url"), "/"),
		LogLevel:       v.GetString("log_level"),
		Locale:         v.GetString("locale"),
		RequestTimeout: positiveDuration(v, "request_timeout", defaultRequestTimeout),
		MaxFileSize:    positiveInt64(v, "max_file_size", defaultMaxFileSize),
		MaxDownload:    positiveInt64(v, "max_download_size", defaultMaxDownload),
		DownloadDir:    v.GetString("download_dir"),
		AllowedOrigins: splitList(v.GetString("allowed_origins")),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_port", defaultServerPort)
	v.SetDefault("base_url", defaultBaseURL)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("locale", defaultLocale)
	v.SetDefault("request_timeout", defaultRequestTimeout.String())
	v.SetDefault("max_file_size", defaultMaxFileSize)
	v.SetDefault("max_download_size", defaultMaxDownload)
	v.SetDefault("download_dir", defaultDownloadDir)
	v.SetDefault("allowed_origins", defaultAllowedOrigins)
}

func readConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		return nil
	}

	v.SetConfigName(".pdfsummary")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// GetServerPort returns the port of the local web front end
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetBaseURL returns the remote service base URL
func (c *AppConfig) GetBaseURL() string {
	return c.BaseURL
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLocale returns the locale used to format results
func (c *AppConfig) GetLocale() string {
	return c.Locale
}

// GetRequestTimeout returns the timeout for remote calls
func (c *AppConfig) GetRequestTimeout() time.Duration {
	return c.RequestTimeout
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetMaxDownloadSize caps how much of an exported PDF is buffered
func (c *AppConfig) GetMaxDownloadSize() int64 {
	return c.MaxDownload
}

// GetDownloadDir returns where the terminal front end saves exports
func (c *AppConfig) GetDownloadDir() string {
	return c.DownloadDir
}

// GetAllowedOrigins returns the CORS origins of the web front end
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

func positiveDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	if d := v.GetDuration(key); d > 0 {
		return d
	}
	return fallback
}

func positiveInt64(v *viper.Viper, key string, fallback int64) int64 {
	if n := v.GetInt64(key); n > 0 {
		return n
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
