package charts

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

const (
	chartWidth   = 1000
	chartHeight  = 600
	marginLeft   = 80.0
	marginRight  = 170.0
	marginTop    = 60.0
	marginBottom = 130.0
	yTicks       = 5
)

var (
	background = color.White
	axisColor  = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	gridColor  = color.RGBA{R: 225, G: 225, B: 225, A: 255}
	emptyColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

	palette = []color.Color{
		color.RGBA{R: 76, G: 114, B: 176, A: 255},
		color.RGBA{R: 221, G: 132, B: 82, A: 255},
		color.RGBA{R: 85, G: 168, B: 104, A: 255},
		color.RGBA{R: 196, G: 78, B: 82, A: 255},
	}
)

// barChart holds one value per (category, series). A nil value leaves a gap.
type barChart struct {
	Title      string
	XLabel     string
	YLabel     string
	Categories []string
	Series     []string
	Values     [][]*float64
	// YMax fixes the axis top; zero scales to the data.
	YMax float64
}

func (c barChart) yMax() float64 {
	if c.YMax > 0 {
		return c.YMax
	}
	top := 0.0
	for _, row := range c.Values {
		for _, v := range row {
			if v != nil && *v > top {
				top = *v
			}
		}
	}
	if top == 0 {
		return 1
	}
	return niceCeil(top * 1.1)
}

func drawBarChart(path string, c barChart) error {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetColor(background)
	dc.Clear()

	plotW := chartWidth - marginLeft - marginRight
	plotH := chartHeight - marginTop - marginBottom
	baseY := marginTop + plotH
	top := c.yMax()

	drawTitle(dc, c.Title)
	drawYAxis(dc, top, plotW, plotH, c.YLabel)

	slot := plotW / float64(len(c.Categories))
	barW := slot * 0.8 / float64(len(c.Series))

	for i, category := range c.Categories {
		slotX := marginLeft + float64(i)*slot
		for j := range c.Series {
			v := c.Values[i][j]
			if v == nil {
				continue
			}
			h := math.Min(math.Max(*v, 0), top) / top * plotH
			x := slotX + slot*0.1 + float64(j)*barW
			dc.SetColor(palette[j%len(palette)])
			dc.DrawRectangle(x, baseY-h, barW, h)
			dc.Fill()
		}

		cx := slotX + slot/2
		dc.SetColor(axisColor)
		if len(c.Categories) > 8 {
			dc.Push()
			dc.RotateAbout(gg.Radians(-40), cx, baseY+10)
			dc.DrawStringAnchored(category, cx, baseY+10, 1, 0.5)
			dc.Pop()
		} else {
			dc.DrawStringAnchored(category, cx, baseY+16, 0.5, 0.5)
		}
	}

	dc.SetColor(axisColor)
	dc.DrawStringAnchored(c.XLabel, marginLeft+plotW/2, chartHeight-20, 0.5, 0.5)

	if len(c.Series) > 1 {
		drawLegend(dc, c.Series)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func drawTitle(dc *gg.Context, title string) {
	dc.SetColor(axisColor)
	dc.DrawStringAnchored(title, chartWidth/2, marginTop/2, 0.5, 0.5)
}

func drawYAxis(dc *gg.Context, top, plotW, plotH float64, label string) {
	baseY := marginTop + plotH

	for i := 0; i <= yTicks; i++ {
		v := top * float64(i) / yTicks
		y := baseY - plotH*float64(i)/yTicks

		dc.SetColor(gridColor)
		dc.SetLineWidth(1)
		dc.DrawLine(marginLeft, y, marginLeft+plotW, y)
		dc.Stroke()

		dc.SetColor(axisColor)
		dc.DrawStringAnchored(formatTick(v), marginLeft-8, y, 1, 0.5)
	}

	dc.SetColor(axisColor)
	dc.SetLineWidth(1.5)
	dc.DrawLine(marginLeft, marginTop, marginLeft, baseY)
	dc.DrawLine(marginLeft, baseY, marginLeft+plotW, baseY)
	dc.Stroke()

	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 20, marginTop+plotH/2)
	dc.DrawStringAnchored(label, 20, marginTop+plotH/2, 0.5, 0.5)
	dc.Pop()
}

func drawLegend(dc *gg.Context, series []string) {
	x := float64(chartWidth) - marginRight + 20
	y := marginTop + 10

	for i, name := range series {
		dc.SetColor(palette[i%len(palette)])
		dc.DrawRectangle(x, y+float64(i)*22, 14, 14)
		dc.Fill()

		dc.SetColor(axisColor)
		dc.DrawStringAnchored(name, x+22, y+float64(i)*22+7, 0, 0.5)
	}
}

// drawHeatmap draws a labelled square matrix of values in [-1, 1].
func drawHeatmap(path, title string, labels []string, values [][]*float64) error {
	const size = 800
	const left = 170.0
	const top = 70.0

	dc := gg.NewContext(size, size)
	dc.SetColor(background)
	dc.Clear()

	dc.SetColor(axisColor)
	dc.DrawStringAnchored(title, size/2, 30, 0.5, 0.5)

	cell := (size - left - 30) / float64(len(labels))

	for i := range labels {
		for j := range labels {
			x := left + float64(j)*cell
			y := top + float64(i)*cell

			v := values[i][j]
			if v == nil {
				dc.SetColor(emptyColor)
			} else {
				dc.SetColor(divergingColor(*v))
			}
			dc.DrawRectangle(x, y, cell, cell)
			dc.Fill()

			if v != nil {
				dc.SetColor(axisColor)
				dc.DrawStringAnchored(fmt.Sprintf("%.2f", *v), x+cell/2, y+cell/2, 0.5, 0.5)
			}
		}
	}

	dc.SetColor(axisColor)
	for i, label := range labels {
		y := top + float64(i)*cell + cell/2
		dc.DrawStringAnchored(label, left-8, y, 1, 0.5)

		x := left + float64(i)*cell + cell/2
		bottom := top + float64(len(labels))*cell + 10
		dc.Push()
		dc.RotateAbout(gg.Radians(-40), x, bottom)
		dc.DrawStringAnchored(label, x, bottom, 1, 0.5)
		dc.Pop()
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// divergingColor maps -1 to blue, 0 to white and 1 to red.
func divergingColor(r float64) color.Color {
	r = math.Max(-1, math.Min(1, r))
	fade := uint8(255 * (1 - math.Abs(r)))
	if r >= 0 {
		return color.RGBA{R: 255, G: fade, B: fade, A: 255}
	}
	return color.RGBA{R: fade, G: fade, B: 255, A: 255}
}

func niceCeil(v float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	for _, step := range []float64{1, 2, 2.5, 5, 10} {
		if step*mag >= v {
			return step * mag
		}
	}
	return 10 * mag
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
