package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/output"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

// cliConfig holds the parsed command line
type cliConfig struct {
	Scene   string
	Options scene.Options
	Workers int
	Seed    int64
	Format  output.Format
	Output  string
	Help    bool
}

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	config, flags, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatalf("Error: %v", err)
	}

	// Show help if requested
	if config.Help {
		printHelp(os.Stdout, flags)
		return
	}

	if err := run(config, logger, time.Now()); err != nil {
		logger.Fatalf("Error: %v", err)
	}
}

// parseFlags reads the command line into a cliConfig
func parseFlags(args []string, errOut io.Writer) (cliConfig, *flag.FlagSet, error) {
	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(errOut)

	sceneName := flags.String("scene", "random-spheres", "Scene name: "+strings.Join(scene.Names(), ", "))
	width := flags.Int("width", 0, "Image width in pixels (0 keeps the scene default)")
	samples := flags.Int("samples", 0, "Samples per pixel (0 keeps the scene default)")
	depth := flags.Int("depth", 0, "Maximum bounce depth, at least 1 (0 keeps the scene default rather than disabling bounces)")
	workers := flags.Int("workers", renderer.WorkerCount(), "Number of parallel row bands")
	seed := flags.Int64("seed", scene.DefaultSeed, "Seed for scene generation and sampling (0 uses the default seed)")
	bvh := flags.String("bvh", geometry.RandomAxis.String(), "BVH split heuristic: random, longest or sah")
	format := flags.String("format", string(output.FormatPNG), "Output format: png or ppm")
	outPath := flags.String("o", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	help := flags.Bool("help", false, "Show help information")

	if err := flags.Parse(args); err != nil {
		return cliConfig{}, flags, err
	}

	f, err := output.ParseFormat(*format)
	if err != nil {
		return cliConfig{}, flags, err
	}
	heuristic, err := geometry.ParseHeuristic(*bvh)
	if err != nil {
		return cliConfig{}, flags, err
	}
	if *width < 0 || *samples < 0 || *depth < 0 {
		return cliConfig{}, flags, fmt.Errorf("%w: width, samples and depth must not be negative", renderer.ErrInvalidConfig)
	}

	// One seed drives both the scene layout and the samplers
	resolvedSeed := *seed
	if resolvedSeed == 0 {
		resolvedSeed = scene.DefaultSeed
	}

	return cliConfig{
		Scene: *sceneName,
		Options: scene.Options{
			Width:           *width,
			SamplesPerPixel: *samples,
			MaxDepth:        *depth,
			Seed:            resolvedSeed,
			Heuristic:       heuristic,
		},
		Workers: *workers,
		Seed:    resolvedSeed,
		Format:  f,
		Output:  *outPath,
		Help:    *help,
	}, flags, nil
}

// printHelp writes usage information and the list of scenes
func printHelp(w io.Writer, flags *flag.FlagSet) {
	fmt.Fprintln(w, "Scanline Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flags.SetOutput(w)
	flags.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, name := range scene.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to output/<scene>/render_<timestamp>.<format> unless -o is given")
}

// outputPath returns the file the render is written to
func outputPath(config cliConfig, now time.Time) string {
	if config.Output != "" {
		return config.Output
	}
	return output.DefaultPath(config.Scene, config.Format, now)
}

// run builds the scene, renders it and saves the image
func run(config cliConfig, logger core.Logger, now time.Time) error {
	logger.Printf("Starting Scanline Raytracer with scene %q...\n", config.Scene)

	selectedScene, err := scene.ByName(config.Scene, config.Options, logger)
	if err != nil {
		return err
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, renderer.Config{
		Workers:       config.Workers,
		Seed:          config.Seed,
		ProgressEvery: renderer.DefaultConfig().ProgressEvery,
	}, logger)
	if err != nil {
		return err
	}

	canvas, stats, err := raytracer.Render()
	if err != nil {
		return err
	}
	logger.Printf("Samples per pixel: %.1f, average luminance %.3f\n", stats.AverageSamples(), canvas.AverageLuminance())

	filename := outputPath(config, now)
	if err := output.Save(filename, canvas, config.Format); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}
