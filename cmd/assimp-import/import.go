package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/assimp-bridge/assimp-go/assimp"
	"github.com/assimp-bridge/assimp-go/internal/config"
	"github.com/assimp-bridge/assimp-go/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import one file and print a scene summary",
		Args:  cobra.ExactArgs(1),
		Example: `
# Triangulate and flip UVs
assimp-import import model.obj --steps Triangulate,FlipUVs

# Give up after ten seconds
assimp-import import city.ifc --timeout 10s
`,
		RunE: runImport,
	}

	cmd.Flags().StringSlice("steps", nil, "Post-process steps, e.g. Triangulate,GenSmoothNormals")
	cmd.Flags().String("preset", "", "Post-process preset, e.g. TargetRealtimeQuality")
	cmd.Flags().Duration("timeout", 0, "Maximum import time (0 = no limit)")
	cmd.Flags().StringP("output", "o", "", "Report format: text, json, yaml")
	cmd.Flags().BoolP("progress", "p", false, "Render import progress on stderr")
	cmd.Flags().Bool("native-log", false, "Forward the Assimp library log")
	cmd.Flags().Bool("native-verbose", false, "Include Assimp debug output in the forwarded log")
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyImportFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logOpts := cfg.LoggingOptions()
	logOpts.Writer = cmd.ErrOrStderr()
	logger, closer, err := logging.New(logOpts)
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfg.Log.Native {
		assimp.SetLogger(logger, cfg.Log.NativeVerbose)
		defer assimp.SetLogger(nil, false)
	}

	flags, err := cfg.Flags()
	if err != nil {
		return err
	}
	showProgress, _ := cmd.Flags().GetBool("progress")

	id := uuid.NewString()
	log := logger.With("import_id", id, "path", path)
	log.Debug("Starting import", "flags", flags.String(), "timeout", time.Duration(cfg.Timeout))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Timeout))
		defer cancel()
	}

	start := time.Now()
	scene, err := importWithProgress(ctx, path, flags, showProgress, cmd.ErrOrStderr())
	elapsed := time.Since(start)
	if err != nil {
		log.Error("Import failed", "error", err, "elapsed", elapsed)
		return err
	}
	defer scene.Release()

	report, err := buildReport(id, scene, elapsed)
	if err != nil {
		return err
	}
	log.Info("Import finished",
		"meshes", report.Stats.Meshes,
		"vertices", report.Stats.Vertices,
		"elapsed", elapsed,
	)

	return writeReport(cmd.OutOrStdout(), cfg.Output, report)
}

func applyImportFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("steps") {
		cfg.PostProcess, _ = flags.GetStringSlice("steps")
	}
	if flags.Changed("preset") {
		cfg.Preset, _ = flags.GetString("preset")
	}
	if flags.Changed("timeout") {
		timeout, _ := flags.GetDuration("timeout")
		cfg.Timeout = config.Duration(timeout)
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("native-log") {
		cfg.Log.Native, _ = flags.GetBool("native-log")
	}
	if flags.Changed("native-verbose") {
		cfg.Log.NativeVerbose, _ = flags.GetBool("native-verbose")
	}
}

// importWithProgress runs the import and, when requested, a progress renderer
// beside it.
func importWithProgress(ctx context.Context, path string, flags assimp.PostProcess, show bool, progressOut io.Writer) (*assimp.Scene, error) {
	if !show {
		return assimp.ReadFile(ctx, path, flags, nil)
	}

	// ReadFile may return on a done context while the library is still
	// reporting, so the feed is never closed. done tells the renderer to stop.
	feed := newProgressFeed(16)
	done := make(chan struct{})

	var scene *assimp.Scene
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(done)
		s, err := assimp.ReadFile(gctx, path, flags, feed.report)
		if err != nil {
			return err
		}
		scene = s
		return nil
	})
	g.Go(func() error {
		renderProgress(progressOut, feed.updates, done)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scene, nil
}

func writeReport(w io.Writer, format string, report *Report) error {
	switch format {
	case config.OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case config.OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return renderText(w, report)
	}
}
