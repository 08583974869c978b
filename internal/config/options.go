package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ytget/doc-vault/internal/api"
)

// Startup configuration sources
const (
	EnvPrefix      = "DOCVAULT"
	ConfigDirName  = "doc-vault"
	ConfigFileName = "config"
	ConfigFileType = "yaml"
	DotEnvFile     = ".env"
)

// Options are the startup options. Precedence: flags > env > config file > defaults.
type Options struct {
	APIURL   string `mapstructure:"api_url" yaml:"api_url"`
	Host     string `mapstructure:"host" yaml:"host"`
	SkipAuth bool   `mapstructure:"skip_auth" yaml:"skip_auth"`
	Debug    bool   `mapstructure:"debug" yaml:"debug"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`
}

// DefaultConfigPath returns <user config dir>/doc-vault/config.yaml
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName+"."+ConfigFileType), nil
}

// Load reads options from a .env file, the environment, the config file and
// defaults. An explicit cfgFile must be readable; the default one may be
// missing but not malformed.
func Load(cfgFile string) (*Options, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", DotEnvFile, err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("api_url", "")
	v.SetDefault("host", "")
	v.SetDefault("skip_auth", false)
	v.SetDefault("debug", false)
	v.SetDefault("log_file", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		if path, err := DefaultConfigPath(); err == nil {
			v.AddConfigPath(filepath.Dir(path))
			v.SetConfigName(ConfigFileName)
			v.SetConfigType(ConfigFileType)
			if err := v.ReadInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return nil, fmt.Errorf("read config %s: %w", path, err)
				}
			}
		}
	}

	var o Options
	if err := v.Unmarshal(&o); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	o.APIURL = strings.TrimSpace(o.APIURL)
	return &o, nil
}

// Save writes o as YAML to cfgFile, or to the default path when empty
func Save(o *Options, cfgFile string) (string, error) {
	path := cfgFile
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return "", err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir config dir: %w", err)
	}

	b, err := yaml.Marshal(o)
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

// DocumentsURL picks the documents endpoint: the startup option, then the
// saved preference override, then detection from the host name.
func (o *Options) DocumentsURL(preference string) string {
	if o.APIURL != "" {
		return o.APIURL
	}
	if preference = strings.TrimSpace(preference); preference != "" {
		return preference
	}
	return api.ResolveBaseURL(o.Host)
}
