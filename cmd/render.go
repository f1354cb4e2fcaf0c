package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-montecarlo-tracer/pkg/material"
	"github.com/df07/go-montecarlo-tracer/pkg/renderer"
	"github.com/df07/go-montecarlo-tracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame of a registered scene and save it as a PNG.
func Render(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	sc, err := createScene(ctx.String("scene"), ctx.Float64("focal"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	config := renderer.MergeSamplingConfig(sc.SamplingConfig, renderer.RenderConfig{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxBounces:      ctx.Int("bounces"),
		NumWorkers:      ctx.Int("workers"),
		Seed:            ctx.Int64("seed"),
	})

	// Ctrl+C stops workers at the next column
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	filename := outputPath(ctx.String("out"), sc.Name, time.Now())
	if err := renderToFile(renderCtx, sc, config, filename); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

// renderToFile renders sc and writes the result to filename. An interrupted
// render still saves the partial image before returning its error.
func renderToFile(ctx context.Context, sc *scene.Scene, config renderer.RenderConfig, filename string) error {
	progress := &progressLogger{}
	img, stats, err := renderer.Render(ctx, sc, config, progress.update)
	interrupted := errors.Is(err, renderer.ErrInterrupted)
	if err != nil && !interrupted {
		return err
	}

	if saveErr := savePNG(filename, img); saveErr != nil {
		return saveErr
	}

	logger.Noticef("frame statistics\n%s", renderStatsTable(stats))
	if interrupted {
		logger.Warningf("partial render saved as %s", filename)
		return err
	}

	logger.Noticef("render saved as %s", filename)
	return nil
}

// outputPath returns out, or output/<scene>/render_<timestamp>.png when out is empty
func outputPath(out, sceneName string, now time.Time) string {
	if out != "" {
		return out
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

// savePNG writes img to filename, creating parent directories as needed
func savePNG(filename string, img image.Image) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return file.Close()
}

func renderStatsTable(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Columns", "Pixels", "Samples", "Bounces", "TIR", "Render time"})
	for _, ws := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", ws.WorkerID),
			fmt.Sprintf("%d-%d", ws.ColumnStart, ws.ColumnEnd),
			fmt.Sprintf("%d", ws.Pixels),
			fmt.Sprintf("%d", ws.Samples),
			fmt.Sprintf("%d", ws.Paths.Bounces),
			fmt.Sprintf("%d", ws.Paths.Scatters[material.ScatterTotalInternal]),
			ws.Duration.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter([]string{
		"", "TOTAL",
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.2f/path", stats.AverageBounces()),
		fmt.Sprintf("%d", stats.Paths.Scatters[material.ScatterTotalInternal]),
		stats.Duration.Round(time.Millisecond).String(),
	})

	table.Render()
	return buf.String()
}
