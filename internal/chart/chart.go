// Package chart renders the bar charts of the font report to PNG using gg.
//
// Each chart plots a single series: one bar per label along the x axis, a y
// axis with rounded tick values and a legend naming the plotted column.
// Negative values extend below the zero line.
package chart

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fontreport"
)

// Sentinel errors.
var (
	// ErrNoBars is returned when a chart has nothing to plot.
	ErrNoBars = errors.New("chart: no bars")

	// ErrInvalidSize is returned for images too small to hold the plot area.
	ErrInvalidSize = errors.New("chart: invalid image size")

	// ErrInvalidValue is returned for NaN or infinite bar values.
	ErrInvalidValue = errors.New("chart: invalid bar value")
)

// Bar is one labelled value.
type Bar struct {
	Label string
	Value float64
}

// BarChart describes a single-series bar chart.
type BarChart struct {
	Title string
	// Column names the plotted series in the legend.
	Column string
	Bars   []Bar
}

// Colors used by the renderer. BarColor matches the matplotlib default.
var (
	BarColor        = gg.Hex("#1f77b4")
	BackgroundColor = gg.White
	AxisColor       = gg.Black
	GridColor       = gg.RGB(0.9, 0.9, 0.9)
)

const (
	defaultWidth  = 640
	defaultHeight = 480

	marginLeft   = 72.0
	marginRight  = 24.0
	marginTop    = 40.0
	marginBottom = 56.0

	// MinWidth and MinHeight leave a plot area of at least 16x16 pixels
	// inside the margins.
	MinWidth  = int(marginLeft+marginRight) + 16
	MinHeight = int(marginTop+marginBottom) + 16

	barFraction = 0.5
	tickLength  = 4.0
	targetTicks = 6

	labelSize = 11.0
	titleSize = 14.0
)

type config struct {
	width  int
	height int
	color  gg.RGBA
}

// Option configures rendering.
type Option func(*config)

// WithSize sets the image size in pixels.
func WithSize(width, height int) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithColor sets the bar fill color.
func WithColor(col gg.RGBA) Option {
	return func(c *config) {
		c.color = col
	}
}

// Render draws the chart and returns the resulting image.
func Render(bc BarChart, opts ...Option) (image.Image, error) {
	var img image.Image
	err := render(bc, opts, func(dc *gg.Context) error {
		img = dc.Image()
		return nil
	})
	return img, err
}

// SavePNG draws the chart into a PNG file at path.
func SavePNG(path string, bc BarChart, opts ...Option) error {
	err := render(bc, opts, func(dc *gg.Context) error {
		return dc.SavePNG(path)
	})
	if err != nil {
		return fmt.Errorf("chart: %s: %w", path, err)
	}
	fontreport.Logger().Debug("chart: saved", "path", path, "bars", len(bc.Bars))
	return nil
}

func render(bc BarChart, opts []Option, out func(*gg.Context) error) error {
	cfg := config{width: defaultWidth, height: defaultHeight, color: BarColor}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.width < MinWidth || cfg.height < MinHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrInvalidSize, cfg.width, cfg.height, MinWidth, MinHeight)
	}
	if len(bc.Bars) == 0 {
		return ErrNoBars
	}
	for _, b := range bc.Bars {
		if math.IsNaN(b.Value) || math.IsInf(b.Value, 0) {
			return fmt.Errorf("%w: %q = %v", ErrInvalidValue, b.Label, b.Value)
		}
	}

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return err
	}
	defer source.Close()

	dc := gg.NewContext(cfg.width, cfg.height)
	defer dc.Close()

	r := renderer{
		dc:     dc,
		chart:  bc,
		cfg:    cfg,
		labels: source.Face(labelSize),
		title:  source.Face(titleSize),
		plot:   newPlotArea(cfg.width, cfg.height),
		scale:  newScale(bc.Bars),
	}
	if err := r.draw(); err != nil {
		return err
	}
	return out(dc)
}

// plotArea is the rectangle bars are drawn into, in pixels.
type plotArea struct {
	x0, y0, x1, y1 float64
}

func newPlotArea(width, height int) plotArea {
	return plotArea{
		x0: marginLeft,
		y0: marginTop,
		x1: float64(width) - marginRight,
		y1: float64(height) - marginBottom,
	}
}

func (p plotArea) width() float64  { return p.x1 - p.x0 }
func (p plotArea) height() float64 { return p.y1 - p.y0 }

type renderer struct {
	dc     *gg.Context
	chart  BarChart
	cfg    config
	labels text.Face
	title  text.Face
	plot   plotArea
	scale  scale
}

// y maps a data value to a pixel row.
func (r *renderer) y(v float64) float64 {
	t := (v - r.scale.min) / (r.scale.max - r.scale.min)
	return r.plot.y1 - t*r.plot.height()
}

func (r *renderer) draw() error {
	r.dc.ClearWithColor(BackgroundColor)

	if err := r.drawGrid(); err != nil {
		return err
	}
	if err := r.drawBars(); err != nil {
		return err
	}
	if err := r.drawAxes(); err != nil {
		return err
	}
	r.drawTitle()
	return r.drawLegend()
}

func (r *renderer) drawGrid() error {
	r.dc.SetColor(GridColor)
	r.dc.SetLineWidth(1)
	for _, v := range r.scale.ticks {
		y := r.y(v)
		r.dc.DrawLine(r.plot.x0, y, r.plot.x1, y)
	}
	return r.dc.Stroke()
}

func (r *renderer) drawBars() error {
	slot := r.plot.width() / float64(len(r.chart.Bars))
	barWidth := slot * barFraction
	zero := r.y(0)

	r.dc.SetColor(r.cfg.color)
	for i, b := range r.chart.Bars {
		x := r.plot.x0 + slot*float64(i) + (slot-barWidth)/2
		top := r.y(b.Value)
		if b.Value < 0 {
			r.dc.DrawRectangle(x, zero, barWidth, top-zero)
		} else {
			r.dc.DrawRectangle(x, top, barWidth, zero-top)
		}
	}
	if err := r.dc.Fill(); err != nil {
		return err
	}

	r.dc.SetFont(r.labels)
	r.dc.SetColor(AxisColor)
	for i, b := range r.chart.Bars {
		cx := r.plot.x0 + slot*(float64(i)+0.5)
		r.dc.DrawStringAnchored(b.Label, cx, r.plot.y1+tickLength+2, 0.5, 0)
	}
	return nil
}

func (r *renderer) drawAxes() error {
	dc := r.dc
	dc.SetColor(AxisColor)
	dc.SetLineWidth(1)

	dc.DrawRectangle(r.plot.x0, r.plot.y0, r.plot.width(), r.plot.height())
	if r.scale.min < 0 {
		zero := r.y(0)
		dc.DrawLine(r.plot.x0, zero, r.plot.x1, zero)
	}

	slot := r.plot.width() / float64(len(r.chart.Bars))
	for i := range r.chart.Bars {
		cx := r.plot.x0 + slot*(float64(i)+0.5)
		dc.DrawLine(cx, r.plot.y1, cx, r.plot.y1+tickLength)
	}
	for _, v := range r.scale.ticks {
		y := r.y(v)
		dc.DrawLine(r.plot.x0-tickLength, y, r.plot.x0, y)
	}
	if err := dc.Stroke(); err != nil {
		return err
	}

	dc.SetFont(r.labels)
	for _, v := range r.scale.ticks {
		dc.DrawStringAnchored(r.scale.format(v), r.plot.x0-tickLength-4, r.y(v), 1, 0.5)
	}
	return nil
}

func (r *renderer) drawTitle() {
	if r.chart.Title == "" {
		return
	}
	r.dc.SetFont(r.title)
	r.dc.SetColor(AxisColor)
	r.dc.DrawStringAnchored(r.chart.Title, (r.plot.x0+r.plot.x1)/2, r.plot.y0/2, 0.5, 0.5)
}

// drawLegend places a swatch and the column name in the top-right corner.
func (r *renderer) drawLegend() error {
	if r.chart.Column == "" {
		return nil
	}
	const (
		pad    = 6.0
		swatch = 18.0
	)
	dc := r.dc
	dc.SetFont(r.labels)
	w, h := dc.MeasureString(r.chart.Column)
	boxW := pad + swatch + pad + w + pad
	boxH := pad + math.Max(h, swatch/2) + pad
	x := r.plot.x1 - pad - boxW
	y := r.plot.y0 + pad

	dc.SetColor(BackgroundColor)
	dc.DrawRectangle(x, y, boxW, boxH)
	if err := dc.Fill(); err != nil {
		return err
	}
	dc.SetColor(GridColor)
	dc.DrawRectangle(x, y, boxW, boxH)
	if err := dc.Stroke(); err != nil {
		return err
	}

	dc.SetColor(r.cfg.color)
	dc.DrawRectangle(x+pad, y+boxH/2-swatch/4, swatch, swatch/2)
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.SetColor(AxisColor)
	dc.DrawStringAnchored(r.chart.Column, x+pad+swatch+pad, y+boxH/2, 0, 0.5)
	return nil
}

// scale is the y axis range and its tick values.
type scale struct {
	min, max float64
	step     float64
	ticks    []float64
	printer  *message.Printer
	decimals int
}

// newScale picks a tick step of 1, 2 or 5 times a power of ten so that
// about targetTicks ticks cover the data, zero included.
func newScale(bars []Bar) scale {
	lo, hi := 0.0, 0.0
	for _, b := range bars {
		lo = math.Min(lo, b.Value)
		hi = math.Max(hi, b.Value)
	}
	if lo == hi {
		hi = 1
	}

	step := niceStep((hi - lo) / targetTicks)
	s := scale{
		min:     math.Floor(lo/step) * step,
		max:     math.Ceil(hi/step) * step,
		step:    step,
		printer: message.NewPrinter(language.English),
	}
	for v := s.min; v <= s.max+step/2; v += step {
		// Snap accumulated error so labels read 0.3, not 0.30000000000000004.
		s.ticks = append(s.ticks, math.Round(v/step)*step)
	}
	if step < 1 {
		s.decimals = int(math.Ceil(-math.Log10(step)))
	}
	return s
}

func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	switch f := raw / base; {
	case f <= 1:
		return base
	case f <= 2:
		return 2 * base
	case f <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

// format renders a tick value with digit grouping.
func (s scale) format(v float64) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	return s.printer.Sprintf("%.*f", s.decimals, v)
}
