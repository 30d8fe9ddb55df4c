package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/scheduler"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, scheduler.FCFS, cfg.Policy)
	assert.Equal(t, int64(2), cfg.RoundRobinTimeQuantum)
	assert.Equal(t, FormatTable, cfg.OutputFormat)
	assert.Equal(t, ":9095", cfg.Addr())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
port: 8080
scheduler:
  policy: Round Robin
  round_robin:
    time_quantum: 4
output:
  format: JSON
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, scheduler.RoundRobin, cfg.Policy)
	assert.Equal(t, int64(4), cfg.RoundRobinTimeQuantum)
	assert.Equal(t, FormatJSON, cfg.OutputFormat)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "scheduler:\n  round_robin:\n    time_quantum: 4\n")
	t.Setenv("CPUSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.RoundRobinTimeQuantum)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "bad quantum", body: "scheduler:\n  round_robin:\n    time_quantum: 0\n", wantErr: scheduler.ErrInvalidQuantum},
		{name: "bad policy", body: "scheduler:\n  policy: lottery\n", wantErr: scheduler.ErrUnknownPolicy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Load(writeConfig(t, "output:\n  format: xml\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
