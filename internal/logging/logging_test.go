package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	require.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	require.Equal(t, zerolog.Disabled, ParseLevel("none"))
	require.Equal(t, zerolog.InfoLevel, ParseLevel("chatty"))
}

func TestSetupFile(t *testing.T) {
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	path := filepath.Join(t.TempDir(), "grid.log")
	closeFn, err := Setup(Options{Level: "debug", File: path, Fullscreen: true})
	require.NoError(t, err)
	require.NotNil(t, closeFn)

	WithSession("abc")
	log.Debug().Int("count", 3).Msg("hello")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"session":"abc"`)
	require.Contains(t, string(data), `"message":"hello"`)
}

func TestSetupFullscreenDiscards(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	closeFn, err := Setup(Options{Fullscreen: true})
	require.NoError(t, err)
	require.Nil(t, closeFn)
}
