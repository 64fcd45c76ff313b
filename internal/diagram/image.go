package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Arrow is one lashing force drawn from its attachment point
type Arrow struct {
	Origin r3.Vec // attachment on the cargo (m)
	Force  r3.Vec // Fx, Fy, Fz
	Label  string
}

// ForceDiagramData holds the plan view of a cargo unit and its lashing forces
type ForceDiagramData struct {
	Length float64 // X extent (m)
	Width  float64 // Y extent (m), direction of travel
	Arrows []Arrow

	// Output size (inches)
	WidthIn  float64
	HeightIn float64
}

// ExportForceDiagram exports a plan view (X-Y) of the cargo outline with the
// horizontal components of every lashing force. Format follows the file
// extension (png, svg, pdf); anything else gets .png appended.
func ExportForceDiagram(data ForceDiagramData, filename string) error {
	if data.Length <= 0 || data.Width <= 0 {
		return fmt.Errorf("invalid cargo outline: length=%.2f, width=%.2f", data.Length, data.Width)
	}

	p := plot.New()
	p.Title.Text = "Lashing Forces (plan view)"
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m) - direction of travel"

	// Cargo outline
	outline, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Length, Y: 0},
		{X: data.Length, Y: data.Width},
		{X: 0, Y: data.Width},
		{X: 0, Y: 0},
	})
	if err != nil {
		return err
	}
	outline.LineStyle.Width = vg.Points(2)
	outline.LineStyle.Color = color.Black
	p.Add(outline)

	// Scale arrows to a fraction of the cargo size
	var largest float64
	for _, a := range data.Arrows {
		largest = max(largest, r3.Norm(r3.Vec{X: a.Force.X, Y: a.Force.Y}))
	}
	scale := 0.0
	if largest > 0 {
		scale = 0.25 * max(data.Length, data.Width) / largest
	}

	for _, a := range data.Arrows {
		tip := plotter.XY{X: a.Origin.X + a.Force.X*scale, Y: a.Origin.Y + a.Force.Y*scale}

		line, err := plotter.NewLine(plotter.XYs{{X: a.Origin.X, Y: a.Origin.Y}, tip})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		p.Add(line)

		head, err := plotter.NewScatter(plotter.XYs{tip})
		if err != nil {
			return err
		}
		head.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		head.GlyphStyle.Radius = vg.Points(3)
		head.GlyphStyle.Shape = draw.TriangleGlyph{}
		p.Add(head)

		if a.Label != "" {
			l, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    []plotter.XY{tip},
				Labels: []string{a.Label},
			})
			if err != nil {
				return err
			}
			p.Add(l)
		}
	}

	// Centre of gravity
	cg, err := plotter.NewScatter(plotter.XYs{{X: data.Length / 2, Y: data.Width / 2}})
	if err != nil {
		return err
	}
	cg.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	cg.GlyphStyle.Radius = vg.Points(4)
	cg.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(cg)

	width := vg.Length(data.WidthIn) * vg.Inch
	height := vg.Length(data.HeightIn) * vg.Inch
	if width <= 0 {
		width = 8 * vg.Inch
	}
	if height <= 0 {
		height = 6 * vg.Inch
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// SideOrigin returns the mid-point of a cargo side, used when a lashing has
// no explicit load attachment point. side is F, R, L or A.
func SideOrigin(side string, length, width float64) r3.Vec {
	switch side {
	case "F":
		return r3.Vec{X: length / 2, Y: width}
	case "A":
		return r3.Vec{X: length / 2, Y: 0}
	case "L":
		return r3.Vec{X: 0, Y: width / 2}
	case "R":
		return r3.Vec{X: length, Y: width / 2}
	}
	return r3.Vec{X: length / 2, Y: width / 2}
}
