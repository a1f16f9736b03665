// scenetool checks, projects, picks and renders geomkit scene files.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/geomkit/internal/config"
	"github.com/Faultbox/geomkit/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	logger.Debug("scenetool starting",
		zap.String("command", args[0]),
		zap.Int("width", cfg.Viewport.Width),
		zap.Int("height", cfg.Viewport.Height))

	if err := run(cfg, args[0], args[1:], os.Stdout); err != nil {
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches one subcommand, writing results to out.
func run(cfg *config.Config, command string, args []string, out io.Writer) error {
	switch command {
	case "check":
		return cmdCheck(cfg, args, out)
	case "project":
		return cmdProject(cfg, args, out)
	case "pick":
		return cmdPick(cfg, args, out)
	case "render":
		return cmdRender(cfg, args, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `scenetool - geomkit scene utility

Usage:
  scenetool [global options] <command> [options]

Commands:
  check <scene.yaml>                 Run the scene's collision checks
  project <scene.yaml>               Print projected wireframe lines
  pick <scene.yaml> <x> <y>          List shapes under a pixel
  render [-labels] [-supersample N] <scene.yaml> <out.png|out.webp|dir>
                                     Rasterize the wireframe

Global options:
  -config <path>    Config file (default ./geomkit.yaml or user config dir)
  -debug            Enable debug logging
  -width <px>       Viewport width
  -height <px>      Viewport height
  -log-file <path>  Also write logs to a rotating file
  -format <fmt>     Snapshot format for directory output (png or webp)

Examples:
  scenetool check examples/scene.yaml
  scenetool -width 640 -height 360 render examples/scene.yaml out.webp
  scenetool pick examples/scene.yaml 640 360`)
}
