package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ROBO_MODEL.
const EnvPrefix = "ROBO"

// flag name -> config key
var flagKeys = map[string]string{
	"catalog":  "catalog",
	"backend":  "backend",
	"model":    "model",
	"language": "language",
	"base-url": "base_url",
	"timeout":  "timeout",
}

// Load reads configuration in order of precedence:
// defaults -> config file -> environment -> changed flags.
// path may be empty, in which case $HOME/.config/robo/config.yaml is used if present.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	file, err := resolveConfigFile(path)
	if err != nil {
		return Config{}, err
	}
	if file != "" {
		if err := loadConfigFile(v, file); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", EnvPrefix+"_API_KEY", "GEMINI_API_KEY"); err != nil {
		return Config{}, fmt.Errorf("failed to bind api key env: %w", err)
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.File = file
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_key", "")
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("model", DefaultModel)
	v.SetDefault("backend", DefaultBackend)
	v.SetDefault("language", DefaultLanguage)
	v.SetDefault("catalog", "")
	v.SetDefault("timeout", "0s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// DefaultConfigPath returns $HOME/.config/robo/config.yaml
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "robo", "config.yaml")
}

func resolveConfigFile(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file %s: %w", path, err)
		}
		return path, nil
	}
	def := DefaultConfigPath()
	if def == "" {
		return "", nil
	}
	if _, err := os.Stat(def); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("config file %s: %w", def, err)
	}
	return def, nil
}

// loadConfigFile expands ${VAR} / ${VAR:default} placeholders before handing the file to viper
func loadConfigFile(v *viper.Viper, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := v.ReadConfig(strings.NewReader(expandEnv(string(content)))); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

var placeholderRe = regexp.MustCompile(`\${(\w+)(:([^}]*))?}`)

func expandEnv(s string) string {
	return placeholderRe.ReplaceAllStringFunc(s, func(match string) string {
		sub := placeholderRe.FindStringSubmatch(match)
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		if sub[2] != "" {
			return sub[3]
		}
		return match
	})
}
