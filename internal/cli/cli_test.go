package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sectiongrid/internal/config"
	"sectiongrid/internal/geometry"

	"github.com/stretchr/testify/require"
)

func TestMakePlan(t *testing.T) {
	p := makePlan("2500", geometry.Viewport{Width: 200, Height: 60})
	require.Equal(t, 3000, p.Max)
	require.Equal(t, 2500, p.Count)
	require.True(t, p.Batched)
	require.Equal(t, 3, p.Frames)
	require.GreaterOrEqual(t, p.Shape.Capacity(), 2500)

	p = makePlan("abc", geometry.Viewport{Width: 80, Height: 24})
	require.Equal(t, 1, p.Count)
	require.False(t, p.Batched)
	require.Equal(t, 1, p.Frames)
}

func TestPlanCommand(t *testing.T) {
	cmd := Root()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"plan", "--count", "12", "--width", "80", "--height", "24"})
	require.NoError(t, cmd.Execute())

	text := out.String()
	require.Contains(t, text, "80×24")
	require.Contains(t, text, "7×2")
	require.Contains(t, text, "single pass")
	require.Contains(t, text, "■")
}

func TestPlanBatchedNoPreview(t *testing.T) {
	p := makePlan("5000", geometry.Viewport{Width: 400, Height: 100})
	text := p.render()
	require.Contains(t, text, "5 frames of 1,000")
	require.NotContains(t, text, "■")
}

func TestWriteSnapshot(t *testing.T) {
	cfg, _, err := config.Load(nil, "")
	require.NoError(t, err)
	cfg.Snapshot.Dir = t.TempDir()
	cfg.Snapshot.Width = 120
	cfg.Snapshot.Height = 60
	cfg.RGB = true

	path, err := writeSnapshot(cfg, "1500", 9)
	require.NoError(t, err)
	require.Equal(t, cfg.Snapshot.Dir, filepath.Dir(path))
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestSnapshotCommand(t *testing.T) {
	dir := t.TempDir()
	cmd := Root()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"snapshot", "-n", "30", "--snapshot.width", "64", "--snapshot.height", "32", "--snapshot.dir", dir, "--log.level", "none"})
	require.NoError(t, cmd.Execute())

	path := strings.TrimSpace(out.String())
	require.Equal(t, dir, filepath.Dir(path))
}

func TestVersionCommand(t *testing.T) {
	cmd := Root()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	require.True(t, strings.HasPrefix(out.String(), "sectiongrid v"))
}
