package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaultsWithNoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 10, cfg.SpeedFactor)
	require.Equal(t, 20.0, cfg.WaitThresholdMin)
	require.Equal(t, 3, cfg.Momentum)
	require.Equal(t, 1, cfg.BoothQueueCapacity)
	require.Equal(t, "00:00:30", cfg.DomesticService.Low)
	require.Equal(t, "00:01:00", cfg.ForeignService.Low)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "speedFactor: 5\nwaitThresholdMin: 15\nstorePath: custom.db\nschedulePath: custom.csv\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.SpeedFactor)
	require.Equal(t, 15.0, cfg.WaitThresholdMin)
	require.Equal(t, "custom.db", cfg.StorePath)
	require.Equal(t, "custom.csv", cfg.SchedulePath)
}

func TestLoadRejectsNonPositiveThreshold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("waitThresholdMin: 0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingConfigFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
}
