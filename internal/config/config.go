package config

// Canvas settings
const (
	Width  = 400
	Height = 400
)

// Background colour (white)
const (
	BackgroundColorR = 255
	BackgroundColorG = 255
	BackgroundColorB = 255
)

// Layout settings
const (
	MaxFontSize      = 250 // Font size of the most frequent label before any shrinking
	MinFontSize      = 4   // Layout stops once a label would need to go below this
	FontStep         = 1   // Font size decrement when a label does not fit
	Margin           = 2   // Padding in pixels around every placed label
	RelativeScaling  = 0.5 // 0 = size by rank only, 1 = size proportional to frequency
	PreferHorizontal = 0.9 // Probability a label is tried horizontally first
	MaxWords         = 200 // Upper bound on labels placed
	Seed             = 42  // Random seed for reproducible layouts
)

// Label colours are drawn with a random hue at fixed saturation and lightness.
const (
	LabelSaturation = 0.8
	LabelLightness  = 0.5
)

// Output settings
const (
	OutputPath  = "wordcloud.jpg"
	JPEGQuality = 95
)

// Preview settings (terminal cells)
const (
	PreviewWidth  = 48
	PreviewHeight = 24
)

// descriptors is the scent vocabulary rendered when no labels are given.
var descriptors = []string{
	"citrus", "woody", "powdery", "iris", "violet", "fresh", "musky", "amber",
	"earthy", "fruity", "leather", "powdery", "sweet", "violet", "animalic",
	"patchouli", "vanilla", "floral", "woody", "leather", "fruity", "woody",
	"aromatic", "warm", "spicy", "sweet", "powdery", "animalic", "fresh",
	"spicy", "violet",
}

// DefaultDescriptors returns a copy of the built-in scent descriptor list.
func DefaultDescriptors() []string {
	out := make([]string, len(descriptors))
	copy(out, descriptors)
	return out
}
