// Command plotbook lists and renders the plotting tutorials.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/plotbook/internal/fsutil"
	"github.com/banshee-data/plotbook/internal/timeutil"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, fsutil.OSFileSystem{}, timeutil.RealClock{}); err != nil {
		if err == flag.ErrHelp {
			return
		}
		log.Printf("plotbook: %v", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, `plotbook - render plotting tutorials to PNG

Usage: plotbook [options]

Examples:
  # List the available tutorials
  plotbook -list

  # Render everything into ./plots
  plotbook

  # Render two tutorials with interactive pages
  plotbook -only t0007_line_style,t0046_bar_color -html -out /tmp/plots

Options:`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
