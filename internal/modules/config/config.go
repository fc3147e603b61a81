package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	configFilePathENV = "CONFIG_FILE"
	envPrefix         = "SEMANTICS"
)

// Path путь к yaml-файлу конфига. Пустой: берём CONFIG_FILE, иначе только дефолты.
type Path string

// Config ...
type Config struct {
	Service struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"service"`

	Log struct {
		Level    string `mapstructure:"level"`    // debug|info|warn|error
		Encoding string `mapstructure:"encoding"` // json|console
	} `mapstructure:"log"`

	Schema struct {
		// свой файл схемы вместо встроенной (формат `semantics export --format yaml`)
		File string `mapstructure:"file"`
		// запрет повторяющихся subject'ов вместо склейки
		RejectDuplicateSubjects bool `mapstructure:"reject_duplicate_subjects"`
	} `mapstructure:"schema"`

	Output struct {
		Format string `mapstructure:"format"` // text|yaml|json
	} `mapstructure:"output"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.name", "semantics")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("schema.file", "")
	v.SetDefault("schema.reject_duplicate_subjects", false)
	v.SetDefault("output.format", "text")
}

// NewConfig: дефолты < файл < env (SEMANTICS_LOG_LEVEL, SEMANTICS_SCHEMA_FILE, ...).
func NewConfig(path Path) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := string(path)
	if file == "" {
		file = os.Getenv(configFilePathENV)
	}
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: want debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("log.encoding %q: want json|console", c.Log.Encoding)
	}
	switch c.Output.Format {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("output.format %q: want text|yaml|json", c.Output.Format)
	}
	if c.Service.Name == "" {
		return fmt.Errorf("service.name is required")
	}
	return nil
}
