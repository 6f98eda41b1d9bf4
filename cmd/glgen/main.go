package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/glgen/internal/version"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "glgen",
		Usage:                  "Generate a minimal OpenGL declarations header from the symbols your code actually uses",
		Version:                version.Version,
		ArgsUsage:              "<inputfiles...>",
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   ".glgen.kdl",
			},
			&cli.StringSliceFlag{
				Name:    "registry",
				Aliases: []string{"g"},
				Usage:   "OpenGL registry header files from https://www.opengl.org/registry/ (comma separated or repeated)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Generated file containing typedefs and boilerplate code",
			},
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "Function prefix for boilerplate code",
			},
			&cli.StringSliceFlag{
				Name:    "ignore",
				Aliases: []string{"i"},
				Usage:   "Identifiers accepted without a registry entry (comma separated or repeated)",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Exclude files matching glob patterns (e.g. --exclude 'src/vendor/**')",
			},
			&cli.BoolFlag{
				Name:  "no-boilerplate",
				Usage: "Don't generate OpenGL loading boilerplate code",
			},
			&cli.BoolFlag{
				Name:  "silent",
				Aliases: []string{"s"},
				Usage: "Suppress non-error output",
			},
			&cli.BoolFlag{
				Name:  "force",
				Aliases: []string{"f"},
				Usage: "Force generation even when the output is up to date",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Stay running and regenerate when inputs change",
			},
			&cli.IntFlag{
				Name:  "jobs",
				Usage: "Maximum concurrent input scans (defaults to CPU count)",
			},
			&cli.BoolFlag{
				Name:   "debug",
				Usage:  "Write trace logging to stderr",
				Hidden: true,
			},
		},
		Action: runGenerate,
	}
}
