package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/linuxmatters/scentcloud/internal/config"
)

// PreviewConfig holds configuration for the terminal preview
type PreviewConfig struct {
	Width  int // Width in terminal cells
	Height int // Height in terminal cells
}

// DefaultPreviewConfig returns the default preview size. Terminal cells
// are roughly twice as tall as they are wide, so a square canvas maps to
// twice as many columns as rows.
func DefaultPreviewConfig() PreviewConfig {
	return PreviewConfig{
		Width:  config.PreviewWidth,
		Height: config.PreviewHeight,
	}
}

// Downsample averages each rectangular region of img into one preview cell
func Downsample(img image.Image, cfg PreviewConfig) [][]color.RGBA {
	bounds := img.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()
	if cfg.Width <= 0 || cfg.Height <= 0 || srcWidth == 0 || srcHeight == 0 {
		return nil
	}

	preview := make([][]color.RGBA, cfg.Height)
	for row := 0; row < cfg.Height; row++ {
		preview[row] = make([]color.RGBA, cfg.Width)

		// Integer cell edges so every source pixel lands in exactly one cell,
		// even when the canvas is not a multiple of the preview size
		y0 := bounds.Min.Y + row*srcHeight/cfg.Height
		y1 := bounds.Min.Y + (row+1)*srcHeight/cfg.Height

		for col := 0; col < cfg.Width; col++ {
			x0 := bounds.Min.X + col*srcWidth/cfg.Width
			x1 := bounds.Min.X + (col+1)*srcWidth/cfg.Width

			var sumR, sumG, sumB uint32
			pixelCount := 0

			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					r, g, b, _ := img.At(x, y).RGBA()
					// RGBA() returns 16-bit values, convert to 8-bit
					sumR += r >> 8
					sumG += g >> 8
					sumB += b >> 8
					pixelCount++
				}
			}

			if pixelCount > 0 {
				preview[row][col] = color.RGBA{
					R: uint8(sumR / uint32(pixelCount)),
					G: uint8(sumG / uint32(pixelCount)),
					B: uint8(sumB / uint32(pixelCount)),
					A: 255,
				}
			}
		}
	}

	return preview
}

// RenderPreview converts a preview grid to a string using ANSI 24-bit true
// colour backgrounds, one space per cell
func RenderPreview(preview [][]color.RGBA) string {
	if len(preview) == 0 {
		return ""
	}

	var sb strings.Builder
	width := len(preview[0])

	sb.WriteString("  Cloud Preview:\n")
	sb.WriteString("  ┌" + strings.Repeat("─", width) + "┐\n")

	for _, row := range preview {
		sb.WriteString("  │")
		for _, pixel := range row {
			// \x1b[48;2;R;G;Bm sets a 24-bit RGB background colour
			fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm \x1b[0m", pixel.R, pixel.G, pixel.B)
		}
		sb.WriteString("│\n")
	}

	sb.WriteString("  └" + strings.Repeat("─", width) + "┘\n")

	return sb.String()
}
