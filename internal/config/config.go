package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/scheduler"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// SchedulerConfig holds the defaults shared by the CLI and the HTTP API.
type SchedulerConfig struct {
	Port                  int
	Policy                scheduler.Policy
	RoundRobinTimeQuantum int64
	OutputFormat          string
}

// Load reads configuration from path, or from ./config.yaml when path is empty.
// A missing default file is not an error. CPUSIM_* environment variables
// override file values, e.g. CPUSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.policy", scheduler.FCFS.String())
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("output.format", FormatTable)

	v.SetEnvPrefix("cpusim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	policy, err := scheduler.ParsePolicy(v.GetString("scheduler.policy"))
	if err != nil {
		return nil, fmt.Errorf("config scheduler.policy: %w", err)
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		Policy:                policy,
		RoundRobinTimeQuantum: v.GetInt64("scheduler.round_robin.time_quantum"),
		OutputFormat:          strings.ToLower(v.GetString("output.format")),
	}
	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("config scheduler.round_robin.time_quantum: %w: %d", scheduler.ErrInvalidQuantum, cfg.RoundRobinTimeQuantum)
	}
	if cfg.OutputFormat != FormatTable && cfg.OutputFormat != FormatJSON {
		return nil, fmt.Errorf("config output.format: unsupported format %q", cfg.OutputFormat)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP API.
func (c *SchedulerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
