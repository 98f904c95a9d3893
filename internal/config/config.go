// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var validate = validator.New()

// Config holds the application's configuration, loaded from .env, environment and flags.
type Config struct {
	APIHost        string   `validate:"required"`
	Port           int      `validate:"required,min=1,max=65535"`
	AllowedOrigins []string `validate:"dive,required,http_url|eq=*"`
	ProductName    string   `validate:"required"`
	ProductVersion string   `validate:"required"`
}

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"host": "API_HOST",
	"port": "PORT",
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, raw := range parts {
		if item := strings.TrimSpace(raw); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Load loads and validates the full application configuration. Values are
// resolved from flags first, then environment, then the .env file at
// configFile, then defaults. A missing .env file is not an error.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if configFile == "" {
		configFile = DefaultConfigFile
	}
	v.SetConfigFile(configFile)
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetDefault("API_HOST", DefaultAPIHost)
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("ALLOWED_ORIGINS", DefaultAllowedOrigins)
	v.SetDefault("PRODUCT_NAME", DefaultProductName)
	v.SetDefault("PRODUCT_VERSION", DefaultProductVersion)

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if !errors.As(err, &cfgErr) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	appConfig := &Config{
		APIHost:        v.GetString("API_HOST"),
		Port:           v.GetInt("PORT"),
		AllowedOrigins: parseList(v.GetString("ALLOWED_ORIGINS")),
		ProductName:    v.GetString("PRODUCT_NAME"),
		ProductVersion: v.GetString("PRODUCT_VERSION"),
	}

	if err := validate.Struct(appConfig); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return appConfig, nil
}

// Info returns the product info listing in its fixed order.
func (c Config) Info() []InfoEntry {
	return []InfoEntry{
		{Key: InfoKeyVersion, Value: c.ProductVersion},
		{Key: InfoKeyProduct, Value: c.ProductName},
	}
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.Port)
}
