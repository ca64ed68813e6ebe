package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Log     Log     `json:"log" yaml:"log" mapstructure:"log"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Library Library `json:"library" yaml:"library" mapstructure:"library"`
	Cache   Cache   `json:"cache" yaml:"cache" mapstructure:"cache"`
}

type Log struct {
	Level string `json:"level" yaml:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	JSON  bool   `json:"json" yaml:"json" mapstructure:"json"`
}

// Server configures the parse api. A RateLimit of zero disables per client limiting.
type Server struct {
	Port      int     `json:"port" yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit" mapstructure:"rateLimit" validate:"gte=0"`
	Burst     int     `json:"burst" yaml:"burst" mapstructure:"burst" validate:"gte=0"`
}

// Storage configuration is for the sqlite parse history only. An empty
// file path disables persistence.
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

type Library struct {
	Dir        string   `json:"dir" yaml:"dir" mapstructure:"dir"`
	Extensions []string `json:"extensions" yaml:"extensions" mapstructure:"extensions" validate:"dive,startswith=."`
}

// Cache bounds the server's memoised parse results. Zero means unbounded.
type Cache struct {
	MaxEntries int `json:"maxEntries" yaml:"maxEntries" mapstructure:"maxEntries" validate:"gte=0"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// New reads a new configuration and validates it
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, Validate(c)
}

// Validate checks the configuration values are usable
func Validate(c Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
