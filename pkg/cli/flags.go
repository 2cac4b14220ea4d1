package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dixieflatline76/Splitter/config"
)

// ErrHelp is returned when usage was requested.
var ErrHelp = errors.New("help requested")

// RunnerConfig holds the options of a headless split.
type RunnerConfig struct {
	Input       string
	SplitPct    float64
	OutputDir   string
	TopName     string
	BottomName  string
	Suggest     bool
	Strategy    config.SuggestStrategy
	CascadePath string
	Verbose     bool
}

// ParseFlags parses command-line arguments (without the program name). A nil config and
// nil error mean no arguments were given and the GUI should start.
func ParseFlags(args []string, stderr io.Writer) (*RunnerConfig, error) {
	if len(args) == 0 {
		return nil, nil
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		PrintUsage(stderr)
		return nil, ErrHelp
	}

	cfg := &RunnerConfig{
		SplitPct:   config.InitialSelectionPercent,
		OutputDir:  ".",
		TopName:    config.TopFileName,
		BottomName: config.BottomFileName,
	}
	var strategy string

	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { PrintUsage(stderr) }

	fs.StringVar(&cfg.Input, "in", "", "Image to split (required)")
	fs.StringVar(&cfg.Input, "i", "", "Image to split (required)")
	fs.Float64Var(&cfg.SplitPct, "split", cfg.SplitPct, "Split height in percent of the image")
	fs.Float64Var(&cfg.SplitPct, "s", cfg.SplitPct, "Split height in percent of the image")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directory the halves are written to")
	fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "Directory the halves are written to")
	fs.StringVar(&cfg.TopName, "top", cfg.TopName, "File name of the upper half")
	fs.StringVar(&cfg.BottomName, "bottom", cfg.BottomName, "File name of the lower half")
	fs.BoolVar(&cfg.Suggest, "suggest", false, "Move the split to a suggested position first")
	fs.StringVar(&strategy, "strategy", "saliency", "Suggestion strategy: saliency, faces or both")
	fs.StringVar(&cfg.CascadePath, "cascade", "", "pigo face cascade file for the faces strategy")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, err
	}

	if cfg.Input == "" {
		fmt.Fprintf(stderr, "Error: -in <image> is required\n\n")
		PrintUsage(stderr)
		return nil, fmt.Errorf("missing required flag -in")
	}
	if cfg.SplitPct < 0 || cfg.SplitPct > 100 {
		return nil, fmt.Errorf("split must be between 0 and 100, got %g", cfg.SplitPct)
	}

	switch strategy {
	case "saliency":
		cfg.Strategy = config.SuggestSaliency
	case "faces":
		cfg.Strategy = config.SuggestFaces
	case "both":
		cfg.Strategy = config.SuggestBoth
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}

	return cfg, nil
}
