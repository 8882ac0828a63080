// Package report renders experiment results for the terminal and as plots.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/drakos74/roq/internal/experiment"
	coin_math "github.com/drakos74/roq/internal/math"
	"github.com/drakos74/roq/internal/model"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
)

// History renders the decimal logarithm of an error history as an ascii graph.
// Non-finite values, i.e. exact zeros, are clamped to the smallest finite value.
func History(errors []float64, caption string) string {
	if len(errors) == 0 {
		return ""
	}
	return asciigraph.Plot(finite(coin_math.Log10(errors)),
		asciigraph.Height(10),
		asciigraph.Caption(caption))
}

func finite(ll []float64) []float64 {
	min := math.Inf(1)
	for _, l := range ll {
		if !math.IsInf(l, 0) && !math.IsNaN(l) {
			min = math.Min(min, l)
		}
	}
	if math.IsInf(min, 1) {
		min = 0
	}
	ff := make([]float64, len(ll))
	for i, l := range ll {
		if math.IsInf(l, 0) || math.IsNaN(l) {
			ff[i] = min
			continue
		}
		ff[i] = l
	}
	return ff
}

func digits(sigma float64) string {
	if sigma == 0 {
		return "-"
	}
	return strconv.Itoa(coin_math.O10(sigma))
}

// Summary writes the key figures of the run as a table.
func Summary(w io.Writer, r *experiment.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"run", "family", "bases", "sigma", "digits", "rate", "validation", "max", "mean", "worst"})
	row := []string{
		r.Config.Name,
		string(r.Config.Family),
		strconv.Itoa(r.Size),
		coin_math.Sci(r.Errors[len(r.Errors)-1]),
		digits(r.Errors[len(r.Errors)-1]),
		coin_math.Format(r.ConvergenceRate),
	}
	if v := r.Validation; v != nil {
		row = append(row,
			strconv.Itoa(v.Summary.Count),
			coin_math.Sci(v.Summary.Max),
			coin_math.Sci(v.Summary.Mean),
			strconv.Itoa(v.Summary.Worst))
	} else {
		row = append(row, "-", "-", "-", "-")
	}
	table.Append(row)
	table.Render()
}

// Bases writes one row per basis vector, with the training index it was built from,
// the error once it was added, its interpolation node and its dominant frequency bin.
// The frequency bin is only reported for real families sampled on a uniform grid.
func Bases(w io.Writer, r *experiment.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "index", "sigma", "node", "bin", "amplitude"})
	for i, v := range r.Basis {
		node := "-"
		if i < len(r.Nodes) {
			node = strconv.Itoa(r.Nodes[i])
		}
		sigma := "-"
		if i+1 < len(r.Errors) {
			sigma = coin_math.Sci(r.Errors[i+1])
		}
		bin, amplitude := dominant(r, v)
		table.Append([]string{
			strconv.Itoa(i),
			strconv.Itoa(r.Indices[i]),
			sigma,
			node,
			bin,
			amplitude,
		})
	}
	table.SetFooter([]string{"", "", "", "", "total", fmt.Sprintf("%d", len(r.Basis))})
	table.Render()
}

func dominant(r *experiment.Result, v []float64) (string, string) {
	if r.Config.Family.IsComplex() || r.Config.Grid.Rule == model.CGLRule {
		return "-", "-"
	}
	d := coin_math.FFT(v).Dominant()
	return strconv.Itoa(d.Frequency), coin_math.Format(d.Amplitude)
}

// Likelihood writes the full and reduced likelihood terms with their timings.
func Likelihood(w io.Writer, c *experiment.Comparison) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"term", "full", "reduced", "full time", "reduced time", "speedup"})
	for _, t := range []struct {
		name string
		term experiment.Term
	}{
		{name: "<h,h>", term: c.ModelModel},
		{name: "<d,h>", term: c.DataModel},
	} {
		table.Append([]string{
			t.name,
			coin_math.Sci(t.term.Full),
			coin_math.Sci(t.term.Reduced),
			t.term.FullTime.String(),
			t.term.ReducedTime.String(),
			coin_math.Format(t.term.Speedup()),
		})
	}
	table.SetFooter([]string{"log L", coin_math.Sci(c.Full), coin_math.Sci(c.Reduced), "", "fraction", coin_math.Sci(c.Fraction)})
	table.Render()
}
