// Wadmin reduces a Doom IWAD to one level and the resources that level needs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	wad "github.com/stuarthighley/wadmin"
)

type cliFlags struct {
	opts    wad.Options
	list    bool
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	f := &cliFlags{opts: wad.DefaultOptions()}
	o := &f.opts

	fs := flag.NewFlagSet("wadmin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: wadmin [flags] input.wad output.wad")
		fmt.Fprintln(stderr, "       wadmin -list input.wad")
		fs.PrintDefaults()
	}

	fs.StringVar(&o.Level, "map", wad.DefaultLevel, "Map marker to keep")
	fs.BoolVar(&o.KeepDemos, "keep-demos", false, "Keep DEMOn lumps")
	fs.BoolVar(&o.KeepMusic, "keep-music", false, "Keep D_* music lumps")
	fs.BoolVar(&o.KeepSounds, "keep-sfx", false, "Keep DS*/DP* sound lumps")
	fs.BoolVar(&o.StripUI, "aggressive-ui-strip", false, "Drop non-essential title/help/intermission art")
	fs.BoolVar(&o.StripSprites, "strip-sprites", false, "Keep only a curated gameplay sprite subset")
	fs.BoolVar(&o.StripMenus, "strip-menu-assets", false, "Drop M_* menu/title patches")
	fs.BoolVar(&o.StripMIDI, "strip-midi-assets", false, "Drop GENMIDI/DMXGUS lumps")
	fs.BoolVar(&o.StripEndScreen, "strip-endscreen", false, "Drop ENDOOM end screen lump")
	fs.StringVar(&o.WallTexture, "canonical-wall-texture", "", "Rewrite all non-empty SIDEDEFS wall textures to this texture name")
	fs.StringVar(&o.FloorFlat, "canonical-floor-flat", "", "Rewrite all SECTORS floor flats to this flat name")
	fs.StringVar(&o.CeilingFlat, "canonical-ceil-flat", "", "Rewrite all SECTORS ceiling flats to this flat name")
	fs.BoolVar(&o.DegradeGraphics, "degrade-graphics", false, "Replace kept sprite graphics with tiny placeholder content")
	fs.BoolVar(&o.BareEssentials, "bare-essentials", false, "Extreme one-map minimization with canonical surfaces and reduced sprite set")
	fs.BoolVar(&o.MinimalThings, "minimal-things", false, "Reduce THINGS to minimal gameplay subset")
	fs.IntVar(&o.MinSectorLight, "min-sector-light", -1, "Set a minimum sector light level (0-255) on the kept map")
	fs.Func("drop", "Drop lumps matching this glob `pattern` (repeatable)", func(s string) error {
		o.DropPatterns = append(o.DropPatterns, s)
		return nil
	})
	fs.BoolVar(&f.list, "list", false, "List the levels in the input and exit")
	fs.BoolVar(&f.verbose, "v", false, "Log progress to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	want := 2
	if f.list {
		want = 1
	}
	if fs.NArg() != want {
		fs.Usage()
		return nil, nil, errors.New("wrong number of arguments")
	}
	return f, fs.Args(), nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	f, files, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	// Set WAD logger
	if f.verbose {
		wad.SetLogger(log.New(stderr, "", log.LstdFlags))
	}

	if f.list {
		input, err := os.ReadFile(files[0])
		if err != nil {
			fmt.Fprintln(stderr, "wadmin:", err)
			return 1
		}
		w, err := wad.Read(input)
		if err != nil {
			fmt.Fprintln(stderr, "wadmin:", err)
			return 1
		}
		fmt.Fprintln(stdout, strings.Join(wad.LevelNames(w.Lumps), "\n"))
		return 0
	}

	report, err := wad.MinifyFile(files[0], files[1], f.opts)
	if err != nil {
		fmt.Fprintln(stderr, "wadmin:", err)
		return 1
	}
	fmt.Fprintf(stdout, "Input : %v\nOutput: %v\n", files[0], files[1])
	fmt.Fprint(stdout, report)
	return 0
}
