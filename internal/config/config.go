package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/invocli/invocli/internal/types"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "INVOCLI"
	defaultDataDir = ".invocli"
)

type Configuration struct {
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Output  OutputConfig  `mapstructure:"output" validate:"required"`
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
	Invoice InvoiceConfig `mapstructure:"invoice" validate:"required"`
	Chrome  ChromeConfig  `mapstructure:"chrome"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Cache   CacheConfig   `mapstructure:"cache"`
	S3      S3Config      `mapstructure:"s3"`
}

// StorageConfig points at the directory holding company.json and customers.json
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir" validate:"required"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// InvoiceConfig holds the defaults applied to invoices that do not set them
type InvoiceConfig struct {
	Currency string        `mapstructure:"currency" validate:"required"`
	TaxMode  types.TaxMode `mapstructure:"tax_mode" validate:"required,oneof=exclusive inclusive"`
}

type ChromeConfig struct {
	// ExecPath is optional, chromedp looks up a local chrome when empty
	ExecPath  string        `mapstructure:"exec_path"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gte=0"`
	NoSandbox bool          `mapstructure:"no_sandbox"`
}

type HTTPConfig struct {
	Timeout  time.Duration `mapstructure:"timeout" validate:"gte=0"`
	RetryMax int           `mapstructure:"retry_max" validate:"gte=0"`
}

type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type S3Config struct {
	Enabled             bool         `mapstructure:"enabled"`
	Region              string       `mapstructure:"region" validate:"required_if=Enabled true"`
	InvoiceBucketConfig BucketConfig `mapstructure:"invoice"`
}

type BucketConfig struct {
	Bucket                string `mapstructure:"bucket"`
	KeyPrefix             string `mapstructure:"key_prefix"`
	PresignExpiryDuration string `mapstructure:"presign_expiry_duration"`
}

// NewConfig loads configuration from an optional config file, the environment and a .env file.
// When configFile is empty config.yaml is searched in the data dir, . and ./config.
func NewConfig(configFile string) (*Configuration, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(os.ExpandEnv(v.GetString("storage.data_dir")))
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.Storage.DataDir = expandHome(config.Storage.DataDir)
	config.Invoice.Currency = types.NormalizeCurrencyCode(config.Invoice.Currency)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns the configuration used when nothing is configured.
// Tests and one-off scripts use it instead of reading files.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Storage: StorageConfig{DataDir: expandHome("~/" + defaultDataDir)},
		Output:  OutputConfig{Dir: "."},
		Logging: LoggingConfig{Level: types.LogLevelInfo},
		Invoice: InvoiceConfig{Currency: "USD", TaxMode: types.TaxModeExclusive},
		Chrome:  ChromeConfig{Timeout: 60 * time.Second},
		HTTP:    HTTPConfig{Timeout: 15 * time.Second, RetryMax: 2},
		Cache:   CacheConfig{Enabled: true},
	}
}

func setDefaults(v *viper.Viper) {
	d := GetDefaultConfig()
	v.SetDefault("storage.data_dir", d.Storage.DataDir)
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("logging.level", string(d.Logging.Level))
	v.SetDefault("invoice.currency", d.Invoice.Currency)
	v.SetDefault("invoice.tax_mode", string(d.Invoice.TaxMode))
	v.SetDefault("chrome.exec_path", "")
	v.SetDefault("chrome.timeout", d.Chrome.Timeout)
	v.SetDefault("chrome.no_sandbox", false)
	v.SetDefault("http.timeout", d.HTTP.Timeout)
	v.SetDefault("http.retry_max", d.HTTP.RetryMax)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.region", "")
	v.SetDefault("s3.invoice.bucket", "")
	v.SetDefault("s3.invoice.key_prefix", "invoices")
	v.SetDefault("s3.invoice.presign_expiry_duration", "30m")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// CompanyFile is the path of the saved companies
func (c StorageConfig) CompanyFile() string {
	return filepath.Join(c.DataDir, "company.json")
}

// CustomerFile is the path of the saved customers
func (c StorageConfig) CustomerFile() string {
	return filepath.Join(c.DataDir, "customers.json")
}
