// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmath/batch"
	"github.com/katalvlaran/lvmath/box"
	"github.com/katalvlaran/lvmath/internal/gltfsrc"
	"github.com/katalvlaran/lvmath/internal/job"
	"github.com/katalvlaran/lvmath/internal/logging"
	"github.com/katalvlaran/lvmath/vector"
)

type boundsFlags struct {
	jobPath     string
	workers     int
	chunkSize   int
	printPoints bool
}

func newBoundsCmd(logLevel *string) *cobra.Command {
	var f boundsFlags

	cmd := &cobra.Command{
		Use:   "bounds [model.gltf|model.glb]",
		Short: "Print the bounding box of the transformed points",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(*logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			var model string
			if len(args) == 1 {
				model = args[0]
			}

			return runBounds(cmd, logger, f, model)
		},
	}

	cmd.Flags().StringVar(&f.jobPath, "job", "", "path to the YAML job file")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "parallel workers (0 = job file or GOMAXPROCS)")
	cmd.Flags().IntVar(&f.chunkSize, "chunk-size", batch.DefaultChunkSize, "points per worker chunk")
	cmd.Flags().BoolVar(&f.printPoints, "print-points", false, "print every transformed point")
	_ = cmd.MarkFlagRequired("job")

	return cmd
}

func runBounds(cmd *cobra.Command, logger *zap.Logger, f boundsFlags, model string) error {
	j, err := job.LoadFile(f.jobPath)
	if err != nil {
		return err
	}

	pts := j.Vectors()
	if model != "" {
		mp, err := gltfsrc.Load(model)
		if err != nil {
			return err
		}
		logger.Info("model loaded", zap.String("path", model), zap.Int("points", len(mp)))
		pts = append(pts, mp...)
	}

	m, err := j.Matrix()
	if err != nil {
		return err
	}
	for i := range j.Steps {
		logger.Debug("step", zap.Int("index", i), zap.String("kind", j.Steps[i].Kind()))
	}

	if f.chunkSize < 1 {
		return fmt.Errorf("--chunk-size must be >= 1, got %d", f.chunkSize)
	}
	opts := []batch.Option{batch.WithChunkSize(f.chunkSize)}
	workers := f.workers
	if workers == 0 {
		workers = j.Workers
	}
	if workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", workers)
	}
	if workers > 0 {
		opts = append(opts, batch.WithWorkers(workers))
	}

	ctx := cmd.Context()
	out, err := batch.TransformPoints(ctx, m, pts, opts...)
	if err != nil {
		return err
	}
	b, err := batch.Bounds(ctx, out, opts...)
	if err != nil {
		return err
	}
	logger.Info("transformed", zap.Int("points", len(out)), zap.Stringer("bounds", b))

	return printResult(cmd.OutOrStdout(), b, out, f.printPoints || j.PrintPoints)
}

func printResult(w io.Writer, b box.Box3[float64], pts []vector.Vec3[float64], withPoints bool) error {
	if withPoints {
		for _, p := range pts {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}
	}
	if b.IsEmpty() {
		_, err := fmt.Fprintln(w, "empty")
		return err
	}
	_, err := fmt.Fprintf(w, "min %v\nmax %v\nsize %v\n", b.Min, b.Max, b.Size())

	return err
}
