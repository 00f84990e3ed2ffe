package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/scheduler"
	"github.com/sandeepkv93/dayboard/internal/storage"
)

const (
	KeyStoreBackend         = "store.backend"
	KeyStorePath            = "store.path"
	KeyStoreKey             = "store.key"
	KeyRolloverInterval     = "rollover.interval"
	KeyRolloverBuffer       = "rollover.buffer"
	KeyHistoryDays          = "history.days"
	KeyDesktopNotifications = "notifications.desktop"
	KeyLogFile              = "log.file"

	EnvPrefix = "DAYBOARD"
	FileName  = "dayboard"
)

var ErrInvalidConfig = errors.New("config: invalid value")

type RuntimeConfig struct {
	StoreBackend         storage.Backend
	StorePath            string
	StoreKey             string
	RolloverInterval     time.Duration
	RolloverBuffer       int
	HistoryDays          int
	DesktopNotifications bool
	LogFile              string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		StoreBackend:     storage.BackendSQLite,
		StorePath:        "~/.local/share/dayboard/dayboard.db",
		StoreKey:         storage.DefaultKey,
		RolloverInterval: scheduler.DefaultInterval,
		RolloverBuffer:   1,
		HistoryDays:      model.DefaultHistoryDays,
	}
}

// New returns a viper instance with defaults, env binding and the config
// search path set up. The file is not read until Load.
func New() *viper.Viper {
	v := viper.New()
	def := DefaultRuntimeConfig()
	v.SetDefault(KeyStoreBackend, string(def.StoreBackend))
	v.SetDefault(KeyStorePath, def.StorePath)
	v.SetDefault(KeyStoreKey, def.StoreKey)
	v.SetDefault(KeyRolloverInterval, def.RolloverInterval)
	v.SetDefault(KeyRolloverBuffer, def.RolloverBuffer)
	v.SetDefault(KeyHistoryDays, def.HistoryDays)
	v.SetDefault(KeyDesktopNotifications, def.DesktopNotifications)
	v.SetDefault(KeyLogFile, def.LogFile)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "dayboard"))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file (or explicit path) and resolves the
// runtime config. A missing config file is not an error.
func Load(v *viper.Viper, explicitFile string) (RuntimeConfig, error) {
	if explicitFile != "" {
		path, err := homedir.Expand(explicitFile)
		if err != nil {
			return RuntimeConfig{}, fmt.Errorf("expand config path: %w", err)
		}
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitFile != "" || !errors.As(err, &notFound) {
			return RuntimeConfig{}, fmt.Errorf("read config: %w", err)
		}
	}
	return Resolve(v)
}

func Resolve(v *viper.Viper) (RuntimeConfig, error) {
	cfg := RuntimeConfig{
		StoreBackend:         storage.Backend(strings.ToLower(strings.TrimSpace(v.GetString(KeyStoreBackend)))),
		StoreKey:             strings.TrimSpace(v.GetString(KeyStoreKey)),
		RolloverInterval:     v.GetDuration(KeyRolloverInterval),
		RolloverBuffer:       v.GetInt(KeyRolloverBuffer),
		HistoryDays:          v.GetInt(KeyHistoryDays),
		DesktopNotifications: v.GetBool(KeyDesktopNotifications),
	}
	if !cfg.StoreBackend.IsValid() {
		return RuntimeConfig{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, KeyStoreBackend, cfg.StoreBackend)
	}
	if cfg.StoreKey == "" {
		cfg.StoreKey = storage.DefaultKey
	}
	if cfg.RolloverInterval <= 0 {
		return RuntimeConfig{}, fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, KeyRolloverInterval)
	}
	if cfg.RolloverBuffer <= 0 {
		cfg.RolloverBuffer = 1
	}
	if cfg.HistoryDays <= 0 {
		cfg.HistoryDays = model.DefaultHistoryDays
	}

	var err error
	if cfg.StorePath, err = expand(v.GetString(KeyStorePath)); err != nil {
		return RuntimeConfig{}, err
	}
	if cfg.LogFile, err = expand(v.GetString(KeyLogFile)); err != nil {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}

func expand(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == ":memory:" {
		return path, nil
	}
	out, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return out, nil
}
