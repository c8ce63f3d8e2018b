package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/linuxmatters/scentcloud/internal/cli"
	"github.com/linuxmatters/scentcloud/internal/config"
	"github.com/linuxmatters/scentcloud/internal/encoder"
	"github.com/linuxmatters/scentcloud/internal/generator"
	"github.com/linuxmatters/scentcloud/internal/renderer"
	"github.com/linuxmatters/scentcloud/internal/ui"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

// topLabels is how many labels the summary lists
const topLabels = 5

type cliArgs struct {
	Labels      []string `arg:"" name:"labels" help:"Scent descriptors to count (default: built-in vocabulary)" optional:""`
	Output      string   `short:"o" help:"Where to write the rendered image" placeholder:"PATH"`
	Config      string   `short:"c" help:"TOML runtime config file" placeholder:"FILE"`
	Font        string   `help:"TrueType font file (default: embedded Go Bold)" placeholder:"PATH"`
	Width       int      `help:"Canvas width in pixels"`
	Height      int      `help:"Canvas height in pixels"`
	Background  string   `help:"Background colour as hex, e.g. #FFFFFF" placeholder:"HEX"`
	MaxFontSize int      `help:"Font size of the most frequent label"`
	Seed        uint64   `help:"Layout seed for reproducible output"`
	Quality     int      `help:"JPEG quality (1-100)"`
	Preview     bool     `help:"Print a preview of the cloud in the terminal"`
	Verbose     bool     `short:"v" help:"Enable debug logging"`
	Version     bool     `help:"Show version information"`
}

var CLI cliArgs

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("scentcloud"),
		kong.Description("Turn scent descriptors into a word cloud."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)
	_ = ctx // Kong context available for future use

	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	cli.PrintBanner()
	logger := cli.NewLogger(os.Stderr, CLI.Verbose)

	rc, err := loadRuntimeConfig(CLI)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	enc, err := encoder.New(encoder.Config{Quality: rc.GetJPEGQuality()})
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	labels := CLI.Labels
	if len(labels) == 0 {
		labels = config.DefaultDescriptors()
		logger.Debug("using built-in descriptors", "count", len(labels))
	}

	outputPath := rc.GetOutputPath()
	cli.PrintInfo("Font", fontLabel(rc.GetFontPath()))
	cli.PrintInfo("Output", outputPath)

	gen := generator.New(renderer.NewRenderer(logger), enc, logger)
	result, err := gen.Generate(labels, renderOptions(rc), outputPath)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	if CLI.Preview {
		fmt.Print(ui.RenderPreview(ui.Downsample(result.Cloud.Image, ui.DefaultPreviewConfig())))
	}

	if msg := droppedWarning(result); msg != "" {
		cli.PrintWarning(msg)
	}
	cli.PrintSummary(summarise(result, len(labels)))
	cli.PrintSuccess(fmt.Sprintf("Done! Output: %s", outputPath))
}

// loadRuntimeConfig reads the optional config file and layers explicitly
// set flags on top of it.
func loadRuntimeConfig(args cliArgs) (*config.RuntimeConfig, error) {
	rc := &config.RuntimeConfig{}
	if args.Config != "" {
		loaded, err := config.Load(args.Config)
		if err != nil {
			return nil, err
		}
		rc = loaded
	}

	applyFlags(rc, args)

	if err := rc.Validate(); err != nil {
		return nil, err
	}
	return rc, nil
}

// applyFlags copies non-zero flag values over rc. Zero means "not given",
// so a zero seed can only be set from the config file.
func applyFlags(rc *config.RuntimeConfig, args cliArgs) {
	if args.Output != "" {
		rc.OutputPath = args.Output
	}
	if args.Font != "" {
		rc.FontPath = args.Font
	}
	if args.Background != "" {
		rc.BackgroundColor = args.Background
	}
	if args.Width != 0 {
		rc.Width = &args.Width
	}
	if args.Height != 0 {
		rc.Height = &args.Height
	}
	if args.MaxFontSize != 0 {
		rc.MaxFontSize = &args.MaxFontSize
	}
	if args.Seed != 0 {
		rc.Seed = &args.Seed
	}
	if args.Quality != 0 {
		rc.JPEGQuality = &args.Quality
	}
}

// renderOptions converts a validated runtime config into renderer options
func renderOptions(rc *config.RuntimeConfig) renderer.Options {
	r, g, b := rc.GetBackgroundColor()
	return renderer.Options{
		FontPath:         rc.GetFontPath(),
		Width:            rc.GetWidth(),
		Height:           rc.GetHeight(),
		Background:       color.RGBA{R: r, G: g, B: b, A: 255},
		MaxFontSize:      rc.GetMaxFontSize(),
		MinFontSize:      rc.GetMinFontSize(),
		FontStep:         rc.GetFontStep(),
		Margin:           rc.GetMargin(),
		RelativeScaling:  rc.GetRelativeScaling(),
		PreferHorizontal: rc.GetPreferHorizontal(),
		MaxWords:         rc.GetMaxWords(),
		Seed:             rc.GetSeed(),
	}
}

func summarise(result *generator.Result, labelCount int) cli.Summary {
	var fileSize int64
	if info, err := os.Stat(result.OutputPath); err == nil {
		fileSize = info.Size()
	}

	ranked := result.Table.Ranked()
	if len(ranked) > topLabels {
		ranked = ranked[:topLabels]
	}
	top := make([]string, len(ranked))
	for i, e := range ranked {
		top[i] = fmt.Sprintf("%s ×%d", displayLabel(e.Label), e.Count)
	}

	bounds := result.Cloud.Image.Bounds()
	return cli.Summary{
		Labels:     labelCount,
		Distinct:   result.Table.Len(),
		Placed:     len(result.Cloud.Placements),
		Top:        top,
		Coverage:   result.Cloud.Coverage,
		Size:       fmt.Sprintf("%d×%d", bounds.Dx(), bounds.Dy()),
		FileSize:   fileSize,
		RenderTime: result.RenderTime,
		WriteTime:  result.WriteTime,
	}
}

// fontLabel names the font a run will use
func fontLabel(fontPath string) string {
	if fontPath == "" {
		return "embedded Go Bold"
	}
	return fontPath
}

// droppedWarning reports labels that were tallied but not drawn, which
// happens when the canvas fills up, max words is reached or a label has no
// visible glyphs. Empty when every label was drawn.
func droppedWarning(result *generator.Result) string {
	distinct := result.Table.Len()
	dropped := distinct - len(result.Cloud.Placements)
	if dropped <= 0 {
		return ""
	}
	return fmt.Sprintf("%d of %d labels were not drawn; try a larger canvas or a smaller --max-font-size", dropped, distinct)
}

func displayLabel(label string) string {
	if strings.TrimSpace(label) == "" {
		return fmt.Sprintf("%q", label)
	}
	return label
}
