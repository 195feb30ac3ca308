// Command camera-model walks through homogeneous coordinates and the
// pinhole camera geometry, writing one PNG per figure.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/banshee-data/plotbook/internal/config"
	"github.com/banshee-data/plotbook/internal/fsutil"
	"github.com/banshee-data/plotbook/internal/monitoring"
	"github.com/banshee-data/plotbook/internal/tutorials"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, fsutil.OSFileSystem{}); err != nil {
		if err == flag.ErrHelp {
			return
		}
		log.Printf("camera-model: %v", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, fsys fsutil.FileSystem) error {
	fs := flag.NewFlagSet("camera-model", flag.ContinueOnError)
	fs.SetOutput(stdout)
	configPath := fs.String("config", "", "Path to a JSON render config")
	outDir := fs.String("out", "", "Output directory (overrides output_dir)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.EmptyRenderConfig()
	if *configPath != "" {
		loaded, err := config.LoadRenderConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "out" {
			cfg.OutputDir = outDir
		}
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	monitoring.SetVerbose(cfg.GetVerbose())

	tutorials.HomogeneousDemo(stdout)

	dir := cfg.GetOutputDir()
	for _, name := range tutorials.CameraExamples {
		e, err := tutorials.Lookup(name)
		if err != nil {
			return err
		}
		figs, err := tutorials.Run(tutorials.EnvFromConfig(cfg, stdout), e)
		if err != nil {
			return err
		}
		for _, f := range figs {
			path := filepath.Join(dir, name+".png")
			if err := f.Save(fsys, path, cfg.GetDPI()); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			monitoring.Logf("wrote %s", path)
		}
	}
	return nil
}
