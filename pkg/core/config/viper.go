package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// EnvConfigFile names the environment variable holding the config file path.
const EnvConfigFile = "CONFIG_FILE"

type viperConfig struct {
	configPath   *string
	noConfigFile bool
}

// ViperOption configures NewViperModule.
type ViperOption func(*viperConfig)

// WithConfigPath reads the given file instead of $CONFIG_FILE.
func WithConfigPath(path string) ViperOption {
	return func(cfg *viperConfig) {
		cfg.configPath = &path
	}
}

// WithoutConfigFile uses environment variables only.
func WithoutConfigFile() ViperOption {
	return func(cfg *viperConfig) {
		cfg.noConfigFile = true
	}
}

// FilePath is the resolved config file. Empty means none.
type FilePath string

// NewViperModule provides *viper.Viper and the postnl Config read from it.
func NewViperModule(opts ...ViperOption) fx.Option {
	cfg := &viperConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return fx.Module("viper",
		fx.Supply(resolveConfigPath(cfg)),
		fx.Provide(
			provideViper,
			Load,
		),
		fx.Invoke(logLoaded),
	)
}

func resolveConfigPath(cfg *viperConfig) FilePath {
	switch {
	case cfg.noConfigFile:
		return ""
	case cfg.configPath != nil:
		return FilePath(*cfg.configPath)
	}
	return FilePath(os.Getenv(EnvConfigFile))
}

func provideViper(path FilePath) (*viper.Viper, error) {
	return NewViper(string(path))
}

func logLoaded(v *viper.Viper, cfg Config, log *zap.Logger) {
	log.Info("configuration loaded",
		zap.String("configFile", v.ConfigFileUsed()),
		zap.Bool("sandbox", cfg.Sandbox),
		zap.String("mode", string(cfg.Mode)),
	)
}

// NewViper returns a viper instance that reads environment variables, with
// "." and "-" in keys mapped to "_" (postnl.api-key -> POSTNL_API_KEY), and
// the config file when path is not empty.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	bindEnv(v)

	if path == "" {
		return v, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file [%s]: %w", path, err)
	}
	return v, nil
}
