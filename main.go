// Package main provides the microfetch command-line tool for displaying
// system information next to a NixOS ASCII art logo.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"microfetch/ascii"
	"microfetch/logging"
	"microfetch/sysinfo"
)

const name = "microfetch"

// overridden during build with -ldflags "-X main.version=..."
var version = "dev"

// collectFunc gathers every banner field using the given palette.
type collectFunc func(ctx context.Context, p sysinfo.Palette) (*sysinfo.SystemInfo, error)

// main is the entry point for the microfetch application.
// It collects system information, renders the banner and writes it to
// stdout in a single write. Any failure exits with status 1 and no banner.
func main() {
	cmd := newRootCommand(os.Stdout, collectSystemInfo)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// versionArg is only recognized as the first argument. Every other
// invocation, including unknown flags and "-h", renders the banner.
const versionArg = "--version"

func newRootCommand(w io.Writer, collect collectFunc) *cli.Command {
	return &cli.Command{
		Name:            name,
		Usage:           "print a summary of this system",
		Version:         version,
		Writer:          w,
		HideHelp:        true,
		HideHelpCommand: true,
		HideVersion:     true,
		SkipFlagParsing: true,
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLogger(name, version)
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().First() == versionArg {
				_, err := fmt.Fprintf(cmd.Root().Writer, "Microfetch %s\n", cmd.Root().Version)
				return err
			}
			return run(ctx, cmd.Root().Writer, sysinfo.DefaultPalette(), collect)
		},
	}
}

// run collects, renders and writes the banner. The palette is resolved by
// the caller so logo and fields always share one variant.
func run(ctx context.Context, w io.Writer, p sysinfo.Palette, collect collectFunc) error {
	info, err := collect(ctx, p)
	if err != nil {
		return err
	}
	return writeReport(w, renderReport(ascii.GetLogo(p), info, p))
}

func collectSystemInfo(ctx context.Context, p sysinfo.Palette) (*sysinfo.SystemInfo, error) {
	return sysinfo.NewCollector(sysinfo.WithPalette(p)).Collect(ctx)
}
