package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"atd/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "ATD_LOG_LEVEL")
	viper.BindEnv("tracking.tickIntervalSeconds", "ATD_TICK_INTERVAL")
	viper.BindEnv("tracking.targetProcess", "ATD_TARGET_PROCESS")
	viper.BindEnv("persistence.saveIntervalSeconds", "ATD_SAVE_INTERVAL")
	viper.BindEnv("persistence.filePath", "ATD_DATA_FILE")
	viper.BindEnv("report.filePath", "ATD_REPORT_FILE")
	viper.BindEnv("cache.enabled", "ATD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "ATD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	if conf.Tracking.InputSampler == "" {
		conf.Tracking.InputSampler = "presence"
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "ActivityTrackDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
