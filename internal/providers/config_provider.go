package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"respire/internal/models"
	"respire/internal/structures"
	"strings"
	"time"
)

const (
	AppName    = "Respire"
	AppVersion = "1.0.0"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("webServer.host", "127.0.0.1")
	v.SetDefault("webServer.port", 8787)
	v.SetDefault("store.driver", "file")
	v.SetDefault("store.dbPath", "./data/respire.db")
	v.SetDefault("store.saveInterval", 30*time.Second)
	v.SetDefault("store.namespace", "respire")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("ledger.unitsPerDay", models.DefaultUnitsPerDay)
	v.SetDefault("ledger.conversionRate", models.DefaultConversionRate)
	v.SetDefault("ledger.refundOnDelete", true)
	v.SetDefault("ledger.tickInterval", time.Second)
	v.SetDefault("panic.breathUnit", time.Second)
	v.SetDefault("cache.ttl", 5)
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	setDefaults(v)

	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.BindEnv("logger.level", "RESPIRE_LOG_LEVEL")
	v.BindEnv("store.driver", "RESPIRE_STORE_DRIVER")
	v.BindEnv("store.saveInterval", "RESPIRE_SAVE_INTERVAL")
	v.BindEnv("cache.enabled", "RESPIRE_CACHE_ENABLED")
	v.BindEnv("webServer.port", "RESPIRE_PORT")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Version = AppVersion
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
