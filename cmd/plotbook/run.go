package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/plotbook/internal/config"
	"github.com/banshee-data/plotbook/internal/fsutil"
	"github.com/banshee-data/plotbook/internal/monitoring"
	"github.com/banshee-data/plotbook/internal/timeutil"
	"github.com/banshee-data/plotbook/internal/tutorials"
	"github.com/banshee-data/plotbook/internal/version"
	"github.com/banshee-data/plotbook/internal/webchart"
)

// options are the parsed command line settings layered over the config
// file.
type options struct {
	cfg     *config.RenderConfig
	only    []string
	list    bool
	version bool
}

func parseFlags(args []string, stdout io.Writer) (*options, error) {
	fs := flag.NewFlagSet("plotbook", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printUsage(stdout, fs) }

	configPath := fs.String("config", "", "Path to a JSON render config")
	outDir := fs.String("out", "", "Output directory (overrides output_dir)")
	only := fs.String("only", "", "Comma-separated tutorial names to render")
	list := fs.Bool("list", false, "List tutorials and exit")
	seed := fs.Int64("seed", 0, "Random seed (overrides seed)")
	imagePath := fs.String("image", "", "Image read by the image tutorials (overrides image_path)")
	html := fs.Bool("html", false, "Also write interactive HTML pages")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.EmptyRenderConfig()
	if *configPath != "" {
		loaded, err := config.LoadRenderConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Flags given explicitly win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutputDir = outDir
		case "seed":
			cfg.Seed = seed
		case "image":
			cfg.ImagePath = imagePath
		case "html":
			cfg.HTML = html
		case "verbose":
			cfg.Verbose = verbose
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	opts := &options{cfg: cfg, list: *list, version: *showVersion}
	if *only != "" {
		for _, name := range strings.Split(*only, ",") {
			if name = strings.TrimSpace(name); name != "" {
				opts.only = append(opts.only, name)
			}
		}
	}
	return opts, nil
}

func selectExamples(only []string) ([]tutorials.Example, error) {
	if len(only) == 0 {
		return tutorials.All(), nil
	}
	out := make([]tutorials.Example, 0, len(only))
	for _, name := range only {
		e, err := tutorials.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// figureNames returns the PNG file names for n figures of one example.
func figureNames(name string, n int) []string {
	if n == 1 {
		return []string{name + ".png"}
	}
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s-%d.png", name, i+1)
	}
	return names
}

// Manifest records what one run produced.
type Manifest struct {
	RunID   string    `json:"run_id"`
	Created time.Time `json:"created"`
	Seed    int64     `json:"seed"`
	Files   []string  `json:"files"`
}

func run(args []string, stdout io.Writer, fsys fsutil.FileSystem, clock timeutil.Clock) error {
	opts, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintln(stdout, version.String("plotbook"))
		return nil
	}
	if opts.list {
		for _, e := range tutorials.All() {
			fmt.Fprintf(stdout, "%-26s %s\n", e.Name, e.Title)
		}
		return nil
	}

	cfg := opts.cfg
	monitoring.SetVerbose(cfg.GetVerbose())
	examples, err := selectExamples(opts.only)
	if err != nil {
		return err
	}

	outDir := cfg.GetOutputDir()
	if err := fsys.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	start := clock.Now()
	manifest := Manifest{RunID: uuid.NewString(), Created: start.UTC(), Seed: cfg.GetSeed()}
	for _, e := range examples {
		figs, err := tutorials.Run(tutorials.EnvFromConfig(cfg, stdout), e)
		if err != nil {
			return err
		}
		for i, name := range figureNames(e.Name, len(figs)) {
			if err := figs[i].Save(fsys, filepath.Join(outDir, name), cfg.GetDPI()); err != nil {
				return fmt.Errorf("%s: %w", e.Name, err)
			}
			manifest.Files = append(manifest.Files, name)
		}

		if cfg.GetHTML() && e.Web != nil {
			name := e.Name + ".html"
			if err := writePage(fsys, filepath.Join(outDir, name), e, tutorials.EnvFromConfig(cfg, io.Discard)); err != nil {
				return fmt.Errorf("%s: %w", e.Name, err)
			}
			manifest.Files = append(manifest.Files, name)
		}
		monitoring.Logf("rendered %s", e.Name)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := fsys.WriteFile(filepath.Join(outDir, "manifest.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	monitoring.Logf("wrote %d files to %s in %v", len(manifest.Files), outDir, clock.Since(start))
	return nil
}

func writePage(fsys fsutil.FileSystem, path string, e tutorials.Example, env *tutorials.Env) (err error) {
	charts, err := e.Web(env)
	if err != nil {
		return err
	}
	w, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return webchart.Render(w, e.Title, charts...)
}
