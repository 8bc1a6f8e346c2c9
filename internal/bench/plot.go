package bench

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// WriteConvergencePlot renders the runs' best-makespan histories as one
// line per run, generation on the X axis.
func WriteConvergencePlot(path, title string, histories [][]int) error {
	if d := dirOf(path); d != "" {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Поколение"
	p.Y.Label.Text = "Лучший makespan"

	for i, hist := range histories {
		pts := make(plotter.XYs, len(hist))
		for g, ms := range hist {
			pts[g].X = float64(g + 1)
			pts[g].Y = float64(ms)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("запуск %d", i+1), line)
	}

	p.Legend.Top = true
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
