package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	conf, meta, err := Load(nil, "")
	require.NoError(t, err)
	require.False(t, meta.FileNotFound)
	require.Equal(t, 100*time.Millisecond, conf.FrameInterval)
	require.Equal(t, 300*time.Millisecond, conf.FadeDelay)
	require.Equal(t, 1, conf.InitialCount)
	require.True(t, conf.Rain)
	require.Equal(t, "info", conf.Log.Level)
	require.Equal(t, 1280, conf.Snapshot.Width)
	require.Equal(t, 2*time.Second, conf.Monitor.Interval)
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"fade_delay": "1s",
		"initial_count": 40,
		"log": {"level": "debug"},
		"snapshot": {"width": 640}
	}`), 0o644))

	t.Setenv("SECTIONGRID_SNAPSHOT_HEIGHT", "480")
	t.Setenv("SECTIONGRID_INITIAL_COUNT", "41")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("rgb", false, "")
	require.NoError(t, cmd.Flags().Set("rgb", "true"))

	conf, meta, err := Load(cmd, path)
	require.NoError(t, err)
	require.False(t, meta.FileNotFound)
	require.Equal(t, time.Second, conf.FadeDelay)
	require.Equal(t, 41, conf.InitialCount)
	require.Equal(t, "debug", conf.Log.Level)
	require.Equal(t, 640, conf.Snapshot.Width)
	require.Equal(t, 480, conf.Snapshot.Height)
	require.True(t, conf.RGB)
}

func TestLoadMissingFile(t *testing.T) {
	_, meta, err := Load(nil, filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	require.True(t, meta.FileNotFound)
}

func TestValidate(t *testing.T) {
	conf, _, err := Load(nil, "")
	require.NoError(t, err)

	bad := conf
	bad.FrameInterval = 0
	require.Error(t, bad.Validate())

	bad = conf
	bad.Snapshot.Width = 0
	require.Error(t, bad.Validate())

	bad = conf
	bad.Monitor.Interval = 0
	require.Error(t, bad.Validate())
	bad.Monitor.Enabled = false
	require.NoError(t, bad.Validate())
}
