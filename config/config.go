// Package config loads the knobs the simulate and optimize commands share,
// layering defaults, a config file, and environment variables through
// viper the way a twelve-factor CLI does.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Triple is a (low, mode, high) service-time distribution expressed as
// wall-clock HH:MM:SS strings, matching how the server-schedule and
// distribution knobs are authored in a config file.
type Triple struct {
	Low  string
	Mode string
	High string
}

// Config holds every knob spec.md enumerates: speedFactor, waitThreshold,
// momentum, boothQueueCapacity, the two service distributions, and the
// store/schedule/architecture/output paths.
type Config struct {
	SpeedFactor        int
	WaitThresholdMin   float64
	Momentum           int
	BoothQueueCapacity int

	DomesticService Triple
	ForeignService  Triple

	StorePath        string
	SchedulePath     string
	ArchitecturePath string
	ReportPath       string

	Verbose bool
}

// Load reads config from the optional file at path (if non-empty),
// environment variables prefixed CUSTOMSSIM_, and defaults, then
// validates the result.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CUSTOMSSIM")
	v.AutomaticEnv()

	v.SetDefault("speedFactor", 10)
	v.SetDefault("waitThresholdMin", 20)
	v.SetDefault("momentum", 3)
	v.SetDefault("boothQueueCapacity", 1)
	v.SetDefault("domesticService.low", "00:00:30")
	v.SetDefault("domesticService.mode", "00:01:00")
	v.SetDefault("domesticService.high", "00:02:00")
	v.SetDefault("foreignService.low", "00:01:00")
	v.SetDefault("foreignService.mode", "00:02:00")
	v.SetDefault("foreignService.high", "00:04:00")
	v.SetDefault("storePath", "customs.db")
	v.SetDefault("schedulePath", "schedule.csv")
	v.SetDefault("architecturePath", "customs_architecture.csv")
	v.SetDefault("reportPath", "report.csv")
	v.SetDefault("verbose", false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := Config{
		SpeedFactor:        v.GetInt("speedFactor"),
		WaitThresholdMin:   v.GetFloat64("waitThresholdMin"),
		Momentum:           v.GetInt("momentum"),
		BoothQueueCapacity: v.GetInt("boothQueueCapacity"),
		DomesticService: Triple{
			Low:  v.GetString("domesticService.low"),
			Mode: v.GetString("domesticService.mode"),
			High: v.GetString("domesticService.high"),
		},
		ForeignService: Triple{
			Low:  v.GetString("foreignService.low"),
			Mode: v.GetString("foreignService.mode"),
			High: v.GetString("foreignService.high"),
		},
		StorePath:        v.GetString("storePath"),
		SchedulePath:     v.GetString("schedulePath"),
		ArchitecturePath: v.GetString("architecturePath"),
		ReportPath:       v.GetString("reportPath"),
		Verbose:          v.GetBool("verbose"),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.SpeedFactor <= 0 {
		return fmt.Errorf("config: speedFactor must be positive, got %d", c.SpeedFactor)
	}
	if c.WaitThresholdMin <= 0 {
		return fmt.Errorf("config: waitThreshold must be positive, got %v", c.WaitThresholdMin)
	}
	if c.Momentum <= 0 {
		return fmt.Errorf("config: momentum must be positive, got %d", c.Momentum)
	}
	if c.BoothQueueCapacity <= 0 {
		return fmt.Errorf("config: boothQueueCapacity must be positive, got %d", c.BoothQueueCapacity)
	}
	if c.StorePath == "" {
		return fmt.Errorf("config: storePath is required")
	}
	if c.SchedulePath == "" {
		return fmt.Errorf("config: schedulePath is required")
	}
	return nil
}
