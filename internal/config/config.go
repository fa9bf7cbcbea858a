// Package config layers defaults, config file, .env file, environment and
// command line flags into one Config.
package config

import (
	"bytes"
	"io/fs"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/flaggen/flaggen/internal/charset"
	"github.com/flaggen/flaggen/internal/flagfmt"
	"github.com/flaggen/flaggen/internal/output"
)

const (
	// EnvPrefix prefixes every environment override, e.g. FLAGGEN_GENERATOR_NUMBER.
	EnvPrefix = "FLAGGEN"

	// EnvConfigJSON holds a JSON document merged over the loaded config.
	EnvConfigJSON = "FLAGGEN_CONFIG_JSON"

	// DefaultEnvFile is loaded into the environment if present.
	DefaultEnvFile = ".env"

	configName = "flaggen"
)

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("generator.number", 10)     //nolint:mnd
	v.SetDefault("generator.length", 8)      //nolint:mnd
	v.SetDefault("generator.charset", string(charset.Alnum))
	v.SetDefault("generator.prefix", "CTF")
	v.SetDefault("generator.suffix", "")
	v.SetDefault("generator.template", flagfmt.DefaultTemplate)
	v.SetDefault("generator.unique", false)
	v.SetDefault("generator.no_braces", false)

	v.SetDefault("output.path", "")
	v.SetDefault("output.format", string(output.Text))

	v.SetDefault("metrics.file", "")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.reportcaller", false)
	v.SetDefault("log.appname", "flaggen")
	v.SetDefault("log.servicename", "flaggen")
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.useconsolewriter", true)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "./log")
	v.SetDefault("log.file.error", "error.log")
	v.SetDefault("log.file.info", "info.log")
	v.SetDefault("log.file.trace", "trace.log")
	v.SetDefault("log.file.warn", "warn.log")

	for _, level := range []string{"error", "info", "trace", "warn"} {
		v.SetDefault("log.file."+level+"maxsize", 10)   //nolint:mnd
		v.SetDefault("log.file."+level+"maxbackups", 3) //nolint:mnd
		v.SetDefault("log.file."+level+"maxage", 28)    //nolint:mnd
	}
}

// ReadConfig builds the Config from v. Flags must already be bound to v.
// configFile may be empty, in which case flaggen.{toml,yaml,json} is looked
// up in the working directory and $HOME/.config/flaggen. envFile may be
// empty or missing.
func ReadConfig(v *viper.Viper, configFile, envFile string) (Config, error) {
	var (
		c   Config
		err error
	)

	if envFile != "" {
		if err = godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrapf(err, "failed to read env file %s", envFile)
		}
	}

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flaggen")
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "failed to read config file")
		}
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	// override it from env
	if configAsJSON := os.Getenv(EnvConfigJSON); configAsJSON != "" {
		if c, err = decodeAndMergeConfig(c, configAsJSON); err != nil {
			return Config{}, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	if err := json.Unmarshal([]byte(configAsJSON), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", errors.Wrap(err, "failed to encode config as toml")
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", errors.Wrap(err, "failed to encode config as json")
	}

	return buffer.String(), nil
}

// validate the generator and output settings. Logger settings are checked by logger.Init.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Generator.Number < 1 {
		return errors.Wrap(ErrNumberMustBePositive, invalidErrMessage)
	}

	if c.Generator.Length < 0 {
		return errors.Wrap(ErrLengthIsNegative, invalidErrMessage)
	}

	cs, err := charset.Parse(c.Generator.Charset)
	if err != nil {
		return errors.Wrap(err, invalidErrMessage)
	}

	format, err := output.ParseFormat(c.Output.Format)
	if err != nil {
		return errors.Wrap(err, invalidErrMessage)
	}

	// normalize so later stages compare canonical names
	c.Generator.Charset = cs.String()
	c.Output.Format = string(format)

	return nil
}
