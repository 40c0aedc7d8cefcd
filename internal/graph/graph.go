// Package graph samples single-variable expressions over an x range for
// plotting in graphing mode.
package graph

import (
	"fmt"
	"math"

	"github.com/driizzyy/deskcalc/internal/engine"
	"github.com/driizzyy/deskcalc/internal/model"
	"github.com/driizzyy/deskcalc/internal/plot"
)

// DefaultSamples is the point count used when none is configured.
const DefaultSamples = 200

// Range is the x interval to sample over.
type Range struct {
	Min float64
	Max float64
}

// Validate reports whether the range is usable.
func (r Range) Validate() error {
	if r.Min >= r.Max {
		return fmt.Errorf("invalid x range [%g, %g]: min must be below max", r.Min, r.Max)
	}
	return nil
}

// Sample evaluates expr at n evenly spaced points across r. Points
// where evaluation fails (domain errors, division by zero) become NaN
// gaps in the series rather than failing the whole plot. An expression
// that fails to parse, or fails at every point, is an error.
func Sample(expr string, r Range, n int, angle model.AngleUnit) (plot.Series, error) {
	if err := r.Validate(); err != nil {
		return plot.Series{}, err
	}
	if n < 2 {
		n = DefaultSamples
	}
	parsed, err := engine.Parse(expr, model.ModeGraphing, 10)
	if err != nil {
		return plot.Series{}, err
	}

	values := make([]float64, n)
	env := engine.Env{Angle: angle, Vars: map[string]float64{}}
	step := (r.Max - r.Min) / float64(n-1)
	finite := 0
	for i := 0; i < n; i++ {
		env.Vars["x"] = r.Min + float64(i)*step
		v, err := engine.EvalFloat(parsed, env)
		if err != nil {
			values[i] = math.NaN()
			continue
		}
		values[i] = v
		finite++
	}
	if finite == 0 {
		return plot.Series{}, fmt.Errorf("%q could not be evaluated anywhere in [%g, %g]", expr, r.Min, r.Max)
	}
	return plot.Series{Name: expr, Values: values}, nil
}

// SampleAll samples several expressions over the same range so they can
// share one chart.
func SampleAll(exprs []string, r Range, n int, angle model.AngleUnit) ([]plot.Series, error) {
	series := make([]plot.Series, 0, len(exprs))
	for _, expr := range exprs {
		s, err := Sample(expr, r, n, angle)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return series, nil
}
