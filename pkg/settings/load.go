package settings

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks struct-level constraints declared in validate tags.
func (c *Config) Validate() error {
	return validatorInstance().Struct(c)
}

// Validate checks the queue configuration.
func (q Queue) Validate() error {
	return validatorInstance().Struct(q)
}

// Validate checks the logger configuration.
func (l Logger) Validate() error {
	return validatorInstance().Struct(l)
}

// Load reads the config file at path (any format viper understands)
// and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}
