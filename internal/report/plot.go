package report

import (
	"fmt"

	"github.com/drakos74/roq/internal/validate"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Scatter saves the decimal logarithm of the validation errors against the test index.
// The image format follows the file extension.
func Scatter(file, title string, r *validate.Report) error {
	p := plot.New()

	p.Title.Text = title
	p.X.Label.Text = "test index"
	p.Y.Label.Text = "log10 projection error"

	scatter, err := plotter.NewScatter(points(r.Log10()))
	if err != nil {
		return fmt.Errorf("could not create scatter for '%s': %w", title, err)
	}
	p.Add(scatter, plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, file); err != nil {
		return fmt.Errorf("could not save plot '%s': %w", file, err)
	}
	return nil
}

func points(ll []float64) plotter.XYs {
	ff := finite(ll)
	pts := make(plotter.XYs, len(ff))
	for i := range pts {
		pts[i].X = float64(i)
		pts[i].Y = ff[i]
	}
	return pts
}

