package renderer

import (
	"os"
	"path/filepath"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/linuxmatters/scentcloud/internal/errors"
)

// embeddedFontName identifies the built-in font in logs and errors
const embeddedFontName = "embedded Go Bold"

// LoadFont loads a TrueType font. An empty path selects the embedded Go Bold
// font. A path that does not exist is retried by base name against the
// system font directories before giving up.
func LoadFont(fontPath string) (*truetype.Font, error) {
	f, _, err := loadFont(fontPath)
	return f, err
}

// loadFont is LoadFont that also reports where the font came from: the
// embedded font name, fontPath itself, or the system font substituted for it.
func loadFont(fontPath string) (*truetype.Font, string, error) {
	if fontPath == "" {
		f, err := parseFont(gobold.TTF, embeddedFontName)
		return f, embeddedFontName, err
	}

	resolved, err := resolveFontPath(fontPath)
	if err != nil {
		return nil, "", err
	}

	fontBytes, err := os.ReadFile(resolved)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeResourceNotFound, err, "reading font %s", resolved)
	}
	f, err := parseFont(fontBytes, resolved)
	return f, resolved, err
}

// resolveFontPath returns fontPath when it names a regular file, otherwise
// the first system font whose name matches its base name.
func resolveFontPath(fontPath string) (string, error) {
	info, err := os.Stat(fontPath)
	if err == nil {
		if info.IsDir() {
			return "", errors.New(errors.ErrCodeResourceNotFound, "font path %s is a directory", fontPath)
		}
		return fontPath, nil
	}

	found, findErr := findfont.Find(filepath.Base(fontPath))
	if findErr != nil {
		return "", errors.Wrap(errors.ErrCodeResourceNotFound, err, "font %s not found", fontPath)
	}
	return found, nil
}

func parseFont(fontBytes []byte, name string) (*truetype.Font, error) {
	f, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFont, err, "parsing font %s", name)
	}
	return f, nil
}

// newFace creates a face at the given pixel size
func newFace(f *truetype.Font, size int) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
