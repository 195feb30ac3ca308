package figure

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
)

// FixedTicks marks exactly the given values. Labels may be nil, in which
// case values are printed with %g; otherwise there must be one label per
// value.
type FixedTicks struct {
	Values []float64
	Labels []string
}

// Ticks implements plot.Ticker.
func (f FixedTicks) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(f.Values))
	for i, v := range f.Values {
		if v < min || v > max {
			continue
		}
		label := strconv.FormatFloat(v, 'g', -1, 64)
		if i < len(f.Labels) {
			label = f.Labels[i]
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: label})
	}
	return ticks
}

// FormatTicks relabels the major ticks of another ticker.
type FormatTicks struct {
	// Ticker chooses the positions; nil means plot.DefaultTicks.
	Ticker plot.Ticker
	Format func(v float64) string
}

// Ticks implements plot.Ticker.
func (f FormatTicks) Ticks(min, max float64) []plot.Tick {
	base := f.Ticker
	if base == nil {
		base = plot.DefaultTicks{}
	}
	ticks := base.Ticks(min, max)
	for i := range ticks {
		if ticks[i].IsMinor() {
			continue
		}
		ticks[i].Label = f.Format(ticks[i].Value)
	}
	return ticks
}

// NoLabels keeps another ticker's marks but blanks every label.
type NoLabels struct {
	Ticker plot.Ticker
}

// Ticks implements plot.Ticker.
func (n NoLabels) Ticks(min, max float64) []plot.Tick {
	base := n.Ticker
	if base == nil {
		base = plot.DefaultTicks{}
	}
	ticks := base.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}

var groupPrinter = message.NewPrinter(language.English)

// Grouped formats v with prec decimals and comma thousands separators,
// e.g. 4000000 -> "4,000,000.000" for prec 3.
func Grouped(v float64, prec int) string {
	return groupPrinter.Sprintf("%."+strconv.Itoa(prec)+"f", v)
}
