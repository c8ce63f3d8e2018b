package encoder

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/linuxmatters/scentcloud/internal/errors"
)

func whiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name    string
		quality int
		want    int
		wantErr bool
	}{
		{"zero selects default", 0, 95, false},
		{"custom", 80, 80, false},
		{"lowest", 1, 1, false},
		{"highest", 100, 100, false},
		{"negative", -1, 0, true},
		{"above range", 101, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := New(Config{Quality: tc.quality})
			if tc.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidConfig) {
					t.Errorf("New() error = %v, want INVALID_CONFIG", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if enc.Quality() != tc.want {
				t.Errorf("Quality() = %d, want %d", enc.Quality(), tc.want)
			}
		})
	}
}

// TestWrite encodes a 400x400 white image and decodes it back
func TestWrite(t *testing.T) {
	enc, err := New(Config{})
	if err != nil {
		t.Fatal(err)
	}

	outputPath := filepath.Join(t.TempDir(), "cloud.jpg")
	if err := enc.Write(whiteImage(400, 400), outputPath); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("output file not created: %v", err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("output is not a JPEG: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 400, 400) {
		t.Errorf("decoded bounds = %v, want 400x400", got)
	}

	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 < 250 || g>>8 < 250 || b>>8 < 250 {
		t.Errorf("corner pixel = (%d, %d, %d), want near white", r>>8, g>>8, b>>8)
	}
}

func TestWrite_Overwrites(t *testing.T) {
	enc, _ := New(Config{})
	outputPath := filepath.Join(t.TempDir(), "cloud.jpg")

	if err := os.WriteFile(outputPath, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	black := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := 3; i < len(black.Pix); i += 4 {
		black.Pix[i] = 255
	}
	if err := enc.Write(black, outputPath); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) == "stale" {
		t.Fatal("existing file was not replaced")
	}
	img, err := jpeg.Decode(openFile(t, outputPath))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c := color.GrayModel.Convert(img.At(8, 8)).(color.Gray); c.Y > 5 {
		t.Errorf("centre pixel luminance = %d, want black", c.Y)
	}
}

func TestWrite_Failures(t *testing.T) {
	enc, _ := New(Config{})
	img := whiteImage(8, 8)

	t.Run("missing directory", func(t *testing.T) {
		outputPath := filepath.Join(t.TempDir(), "absent", "cloud.jpg")
		err := enc.Write(img, outputPath)
		if !errors.Is(err, errors.ErrCodeWriteFailure) {
			t.Fatalf("Write() error = %v, want WRITE_FAILURE", err)
		}
		if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
			t.Errorf("output file exists after failed write")
		}
	})

	t.Run("parent is a file", func(t *testing.T) {
		parent := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(parent, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		err := enc.Write(img, filepath.Join(parent, "cloud.jpg"))
		if !errors.Is(err, errors.ErrCodeWriteFailure) {
			t.Errorf("Write() error = %v, want WRITE_FAILURE", err)
		}
	})

	t.Run("target is a directory", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "cloud.jpg")
		if err := os.Mkdir(target, 0o755); err != nil {
			t.Fatal(err)
		}
		err := enc.Write(img, target)
		if !errors.Is(err, errors.ErrCodeWriteFailure) {
			t.Errorf("Write() error = %v, want WRITE_FAILURE", err)
		}
		assertNoTempFiles(t, dir)
	})

	t.Run("read-only directory", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("permission checks do not apply to root")
		}
		dir := t.TempDir()
		if err := os.Chmod(dir, 0o555); err != nil {
			t.Fatal(err)
		}
		defer os.Chmod(dir, 0o755)

		err := enc.Write(img, filepath.Join(dir, "cloud.jpg"))
		if !errors.Is(err, errors.ErrCodeWriteFailure) {
			t.Errorf("Write() error = %v, want WRITE_FAILURE", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if err := enc.Write(img, ""); !errors.Is(err, errors.ErrCodeWriteFailure) {
			t.Errorf("Write() error = %v, want WRITE_FAILURE", err)
		}
	})
}

func openFile(t *testing.T, path string) *os.File {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { file.Close() })
	return file
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) > 0 {
		t.Errorf("temporary files left behind: %v", matches)
	}
}
