package cli

import (
	"fmt"
	"math/rand"
	"time"

	"sectiongrid/internal/cell"
	"sectiongrid/internal/config"
	"sectiongrid/internal/frame"
	"sectiongrid/internal/geometry"
	"sectiongrid/internal/input"
	"sectiongrid/internal/logging"
	"sectiongrid/internal/render"
	"sectiongrid/internal/snapshot"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Snapshot renders a grid straight to a PNG file.
func Snapshot() *cobra.Command {
	var (
		raw  string
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a grid to a PNG file",
		Long:  `Render a grid of cells to a PNG file without opening the full-screen UI`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			cfg, _, err := config.Load(cmd, configFile)
			if err != nil {
				return err
			}
			closeLog, err := logging.Setup(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
			if err != nil {
				return fmt.Errorf("error opening log file: %w", err)
			}
			if closeLog != nil {
				defer closeLog()
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			path, err := writeSnapshot(cfg, raw, seed)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	cmd.Flags().StringVarP(&raw, "count", "n", "1", "number of cells, clamped to what fits the image")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for random colours, 0 picks one")
	cmd.Flags().Bool("rgb", false, "use random cell colours")
	cmd.Flags().Int("snapshot.width", 1280, "image width in pixels")
	cmd.Flags().Int("snapshot.height", 720, "image height in pixels")
	cmd.Flags().String("snapshot.dir", ".", "output directory")
	return cmd
}

// writeSnapshot runs a render pass headless, flushing frames back to back,
// and saves the result.
func writeSnapshot(cfg config.Config, raw string, seed int64) (string, error) {
	v := geometry.Viewport{Width: cfg.Snapshot.Width, Height: cfg.Snapshot.Height}
	count := input.Clamp(raw, geometry.MaxAllowed(v))
	mode := cell.Themed
	if cfg.RGB {
		mode = cell.RandomRGB
	}

	frames := frame.NewScheduler()
	r := render.New(frames, cell.NewGenerator(rand.New(rand.NewSource(seed))))
	var cells []cell.Descriptor
	r.Render(count, mode, func(done, total int) {
		log.Debug().Int("done", done).Int("total", total).Msg("generating cells")
	}, func(c []cell.Descriptor) {
		cells = c
	})
	for frames.Pending() > 0 {
		frames.Flush()
	}

	img := snapshot.Draw(v.Width, v.Height, count, cells)
	path, err := snapshot.Save(cfg.Snapshot.Dir, img)
	if err != nil {
		return "", err
	}
	log.Info().Str("path", path).Int("count", count).Str("mode", mode.String()).Msg("snapshot saved")
	return path, nil
}
