// File: internal/analytics/charts.go
package analytics

import (
	"bytes"
	"encoding/base64"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// 圖表於伺服器端渲染為 PNG，編碼 base64 後直接塞進 JSON 回應供前端顯示

func renderBarChart(title, yLabel string, names []string, values []float64) (string, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(24))
	if err != nil {
		return "", err
	}
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.6
	p.X.Tick.Label.XAlign = -0.8

	return encodePNG(p)
}

func renderHistogram(title, xLabel string, values []float64) (string, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "frequency"

	h, err := plotter.NewHist(plotter.Values(values), 20)
	if err != nil {
		return "", err
	}
	p.Add(h)

	return encodePNG(p)
}

func encodePNG(p *plot.Plot) (string, error) {
	wt, err := p.WriterTo(10*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
