package core

import (
	"github.com/Sokol111/postnl-go/pkg/core/config"
	"github.com/Sokol111/postnl-go/pkg/core/logger"
	"go.uber.org/fx"
)

type coreOptions struct {
	loggerConfig  *logger.Config
	configPath    *string
	disableDotEnv bool
	noConfigFile  bool
}

// Option configures the core module.
type Option func(*coreOptions)

// WithLoggerConfig uses a static logger config instead of the "logger"
// section.
func WithLoggerConfig(cfg logger.Config) Option {
	return func(opts *coreOptions) {
		opts.loggerConfig = &cfg
	}
}

// WithConfigPath reads the given config file instead of $CONFIG_FILE.
func WithConfigPath(path string) Option {
	return func(opts *coreOptions) {
		opts.configPath = &path
	}
}

// WithoutEnvFile skips loading the .env file.
func WithoutEnvFile() Option {
	return func(opts *coreOptions) {
		opts.disableDotEnv = true
	}
}

// WithoutConfigFile reads settings from the environment only.
func WithoutConfigFile() Option {
	return func(opts *coreOptions) {
		opts.noConfigFile = true
	}
}

// NewCoreModule provides configuration and logging: the .env file, viper,
// the postnl Config and *zap.Logger.
//
//	fx.New(
//	    core.NewCoreModule(core.WithConfigPath("./postnl.yaml")),
//	    postnl.NewModule(),
//	)
func NewCoreModule(opts ...Option) fx.Option {
	cfg := &coreOptions{}
	for _, opt := range opts {
		opt(cfg)
	}

	return fx.Options(
		dotEnvModule(cfg),
		viperModule(cfg),
		loggerModule(cfg),
	)
}

func dotEnvModule(cfg *coreOptions) fx.Option {
	if cfg.disableDotEnv {
		return fx.Options()
	}
	return config.NewDotEnvModule()
}

func viperModule(cfg *coreOptions) fx.Option {
	var opts []config.ViperOption
	if cfg.configPath != nil {
		opts = append(opts, config.WithConfigPath(*cfg.configPath))
	}
	if cfg.noConfigFile {
		opts = append(opts, config.WithoutConfigFile())
	}
	return config.NewViperModule(opts...)
}

func loggerModule(cfg *coreOptions) fx.Option {
	if cfg.loggerConfig != nil {
		return logger.NewZapLoggingModule(logger.WithConfig(*cfg.loggerConfig))
	}
	return logger.NewZapLoggingModule()
}
