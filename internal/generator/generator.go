// Package generator runs the word-cloud pipeline: tally the labels, lay
// them out on a canvas and write the image to disk.
package generator

import (
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/linuxmatters/scentcloud/internal/renderer"
	"github.com/linuxmatters/scentcloud/internal/tally"
)

// CloudRenderer turns a frequency table into a rendered cloud.
type CloudRenderer interface {
	Render(table tally.Table, opts renderer.Options) (*renderer.Cloud, error)
}

// ImageWriter persists a rendered image at path.
type ImageWriter interface {
	Write(img image.Image, path string) error
}

// Result summarises one run.
type Result struct {
	Table      tally.Table
	Cloud      *renderer.Cloud
	OutputPath string
	RenderTime time.Duration
	WriteTime  time.Duration
}

// Generator wires a renderer and a writer together.
type Generator struct {
	renderer CloudRenderer
	writer   ImageWriter
	logger   *log.Logger
}

// New creates a Generator. A nil logger falls back to log.Default().
func New(r CloudRenderer, w ImageWriter, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{renderer: r, writer: w, logger: logger}
}

// Generate tallies labels, renders them with opts and writes the result to
// outputPath. Nothing is written unless rendering succeeds. Errors from
// either step are returned as-is.
func (g *Generator) Generate(labels []string, opts renderer.Options, outputPath string) (*Result, error) {
	table := tally.Count(labels)
	g.logger.Debug("tallied labels", "labels", len(labels), "distinct", table.Len())

	start := time.Now()
	cloud, err := g.renderer.Render(table, opts)
	if err != nil {
		return nil, err
	}
	renderTime := time.Since(start)
	g.logger.Debug("rendered cloud", "placed", len(cloud.Placements), "coverage", cloud.Coverage,
		"elapsed", renderTime.Round(time.Millisecond))

	start = time.Now()
	if err := g.writer.Write(cloud.Image, outputPath); err != nil {
		return nil, err
	}
	writeTime := time.Since(start)
	g.logger.Debug("wrote image", "path", outputPath, "elapsed", writeTime.Round(time.Millisecond))

	return &Result{
		Table:      table,
		Cloud:      cloud,
		OutputPath: outputPath,
		RenderTime: renderTime,
		WriteTime:  writeTime,
	}, nil
}
