package figure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func TestSymLogScale(t *testing.T) {
	s := SymLogScale{LinThresh: 0.01}
	assert.InDelta(t, 0, s.Normalize(-1, 1, -1), 1e-12)
	assert.InDelta(t, 1, s.Normalize(-1, 1, 1), 1e-12)
	assert.InDelta(t, 0.5, s.Normalize(-1, 1, 0), 1e-12)

	// Monotonic across the linear and log pieces
	prev := math.Inf(-1)
	for x := -1.0; x <= 1.0; x += 0.001 {
		n := s.Normalize(-1, 1, x)
		require.Greater(t, n, prev, "not increasing at %v", x)
		prev = n
	}

	// Continuous at the threshold
	below := s.forward(0.01 - 1e-12)
	above := s.forward(0.01 + 1e-12)
	assert.InDelta(t, below, above, 1e-9)
}

func TestSymLogTicks(t *testing.T) {
	ticks := SymLogTicks{LinThresh: 0.01}.Ticks(-0.6, 0.6)
	var values []float64
	for _, tk := range ticks {
		values = append(values, tk.Value)
	}
	assert.Equal(t, []float64{-0.1, -0.01, 0, 0.01, 0.1}, values)
	assert.Equal(t, "10^-2", ticks[3].Label)
	assert.Equal(t, "-10^-1", ticks[0].Label)
	assert.Equal(t, "0", ticks[2].Label)
}

func TestLogitScale(t *testing.T) {
	var s LogitScale
	assert.InDelta(t, 0.5, s.Normalize(0.01, 0.99, 0.5), 1e-12)
	assert.InDelta(t, 0, s.Normalize(0.01, 0.99, 0.01), 1e-12)
	assert.InDelta(t, 1, s.Normalize(0.01, 0.99, 0.99), 1e-12)
	// Symmetric about one half
	assert.InDelta(t, 1-s.Normalize(0.01, 0.99, 0.1), s.Normalize(0.01, 0.99, 0.9), 1e-12)
	// Out of range inputs are clamped, not NaN
	assert.False(t, math.IsNaN(s.Normalize(0.01, 0.99, 0)))
	assert.False(t, math.IsNaN(s.Normalize(0.01, 0.99, 1)))
}

func TestLogitTicks(t *testing.T) {
	ticks := LogitTicks{}.Ticks(0.005, 0.995)
	labels := make([]string, len(ticks))
	for i, tk := range ticks {
		labels[i] = tk.Label
	}
	assert.Equal(t, []string{"0.01", "0.1", "1/2", "1-0.1", "1-0.01"}, labels)
}

var _ plot.Ticker = LogitTicks{}
