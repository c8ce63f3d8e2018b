package ui

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestDownsample(t *testing.T) {
	// Left half red, right half blue
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			c := color.RGBA{R: 255, A: 255}
			if x >= 4 {
				c = color.RGBA{B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}

	preview := Downsample(img, PreviewConfig{Width: 2, Height: 2})

	if len(preview) != 2 || len(preview[0]) != 2 {
		t.Fatalf("preview size = %dx%d, want 2x2", len(preview[0]), len(preview))
	}
	for row := 0; row < 2; row++ {
		if got := preview[row][0]; got != (color.RGBA{R: 255, A: 255}) {
			t.Errorf("cell (0,%d) = %v, want red", row, got)
		}
		if got := preview[row][1]; got != (color.RGBA{B: 255, A: 255}) {
			t.Errorf("cell (1,%d) = %v, want blue", row, got)
		}
	}
}

func TestDownsample_AveragesAndUnevenSizes(t *testing.T) {
	// 3x1 image: black, white, white into one cell
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.SetRGBA(0, 0, color.RGBA{A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetRGBA(2, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	preview := Downsample(img, PreviewConfig{Width: 1, Height: 1})
	if got := preview[0][0]; got.R != 170 || got.G != 170 || got.B != 170 {
		t.Errorf("averaged cell = %v, want (170,170,170)", got)
	}

	// More cells than pixels still yields the requested grid
	preview = Downsample(img, PreviewConfig{Width: 6, Height: 2})
	if len(preview) != 2 || len(preview[0]) != 6 {
		t.Errorf("preview size = %dx%d, want 6x2", len(preview[0]), len(preview))
	}
}

func TestDownsample_Degenerate(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if got := Downsample(img, PreviewConfig{}); got != nil {
		t.Errorf("zero-size config = %v, want nil", got)
	}
	if got := Downsample(image.NewRGBA(image.Rectangle{}), DefaultPreviewConfig()); got != nil {
		t.Errorf("empty image = %v, want nil", got)
	}
}

func TestRenderPreview(t *testing.T) {
	if got := RenderPreview(nil); got != "" {
		t.Errorf("RenderPreview(nil) = %q, want empty", got)
	}

	out := RenderPreview([][]color.RGBA{
		{{R: 1, G: 2, B: 3, A: 255}, {R: 4, G: 5, B: 6, A: 255}},
	})

	for _, want := range []string{"Cloud Preview:", "┌──┐", "└──┘", "\x1b[48;2;1;2;3m", "\x1b[48;2;4;5;6m"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%q", want, out)
		}
	}
}
