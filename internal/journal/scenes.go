package journal

import (
	"strings"

	"github.com/jung-kurt/gofpdf/v2"
)

// Scenery is the kind of illustration drawn for a stop.
type Scenery string

const (
	SceneForest  Scenery = "forest"
	SceneCave    Scenery = "cave"
	SceneHall    Scenery = "hall"
	SceneTown    Scenery = "town"
	SceneWater   Scenery = "water"
	SceneShore   Scenery = "shore"
	SceneRuins   Scenery = "ruins"
	SceneTower   Scenery = "tower"
	SceneStation Scenery = "station"
	SceneDefault Scenery = "default"
)

// sceneryWords is checked in order; the first word found in a location
// name decides its scenery.
var sceneryWords = []struct {
	scenery Scenery
	words   []string
}{
	{SceneForest, []string{"forest", "grove", "wood", "nest"}},
	{SceneCave, []string{"cave", "cavern", "tunnel", "mine"}},
	{SceneTower, []string{"tower", "clocktower", "lighthouse"}},
	{SceneHall, []string{"castle", "manor", "temple", "museum", "asylum", "library"}},
	{SceneTown, []string{"village", "city", "capital", "town", "camp", "market"}},
	{SceneWater, []string{"swamp", "river", "lake", "rift"}},
	{SceneShore, []string{"cliff", "shore", "sea", "beach", "planet"}},
	{SceneRuins, []string{"ruins", "ruin"}},
	{SceneStation, []string{"station", "laboratory", "base", "ship"}},
}

// SceneryFor picks an illustration for a location from its name.
func SceneryFor(location string) Scenery {
	words := strings.Fields(strings.ToLower(location))
	for _, row := range sceneryWords {
		for _, w := range words {
			for _, kw := range row.words {
				if w == kw {
					return row.scenery
				}
			}
		}
	}
	return SceneDefault
}

func drawScene(pdf *gofpdf.Fpdf, x, y float64, scenery Scenery, battle, current bool) {
	r := sceneSize / 2.0
	if current {
		pdf.SetDrawColor(80, 50, 20)
		pdf.SetLineWidth(2)
		pdf.Circle(x, y, r+4.0, "D")
		pdf.SetLineWidth(1)
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1.2)
	switch scenery {
	case SceneForest:
		drawForest(pdf, x, y, r)
	case SceneCave:
		drawCave(pdf, x, y, r)
	case SceneTower:
		drawTower(pdf, x, y, r)
	case SceneHall:
		drawHall(pdf, x, y, r)
	case SceneTown:
		drawTown(pdf, x, y, r)
	case SceneWater:
		drawWater(pdf, x, y, r)
	case SceneShore:
		drawShore(pdf, x, y, r)
	case SceneRuins:
		drawRuins(pdf, x, y, r)
	case SceneStation:
		drawStation(pdf, x, y, r)
	default:
		pdf.Circle(x, y, r*0.35, "D")
	}
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)
	if battle {
		pdf.SetLineWidth(1.5)
		pdf.SetDrawColor(180, 40, 40)
		pdf.Line(x-r*0.4, y-r*0.4, x+r*0.4, y+r*0.4)
		pdf.Line(x-r*0.4, y+r*0.4, x+r*0.4, y-r*0.4)
		pdf.SetLineWidth(1)
		pdf.SetDrawColor(80, 50, 30)
	}
}

func drawForest(pdf *gofpdf.Fpdf, x, y, r float64) {
	for i, dx := range []float64{-r * 0.4, 0, r * 0.35} {
		h := 12 + float64(i)*4
		pdf.Line(x+dx, y+r*0.3, x+dx, y+r*0.3-h)
		pdf.Circle(x+dx, y+r*0.3-h, 5, "D")
	}
}

func drawCave(pdf *gofpdf.Fpdf, x, y, r float64) {
	pdf.Arc(x, y+r*0.3, r*0.8, r*0.6, 0, 0, 180, "D")
	pdf.Line(x-r*0.8, y+r*0.3, x-r*0.8, y+r*0.6)
	pdf.Line(x+r*0.8, y+r*0.3, x+r*0.8, y+r*0.6)
	pdf.Arc(x, y+r*0.6, r*0.3, r*0.3, 0, 0, 180, "D")
}

func drawTower(pdf *gofpdf.Fpdf, x, y, r float64) {
	pdf.Rect(x-r*0.2, y-r*0.4, r*0.4, r*0.9, "D")
	pdf.Line(x-r*0.3, y-r*0.4, x, y-r*0.8)
	pdf.Line(x, y-r*0.8, x+r*0.3, y-r*0.4)
	pdf.Circle(x, y-r*0.1, 3, "D")
}

func drawHall(pdf *gofpdf.Fpdf, x, y, r float64) {
	pdf.Rect(x-r*0.6, y-r*0.2, r*1.2, r*0.6, "D")
	for _, dx := range []float64{-r * 0.6, r * 0.4} {
		pdf.Rect(x+dx, y-r*0.5, r*0.2, r*0.3, "D")
	}
	pdf.Rect(x-r*0.12, y+r*0.1, r*0.24, r*0.3, "D")
}

func drawTown(pdf *gofpdf.Fpdf, x, y, r float64) {
	for i, dx := range []float64{-r * 0.5, -r * 0.1, r * 0.3} {
		w, h := 10.0, 14.0+float64(i)*4
		pdf.Rect(x+dx-w/2, y+r*0.4-h, w, h, "D")
	}
}

func drawWater(pdf *gofpdf.Fpdf, x, y, r float64) {
	for row := -1; row <= 1; row++ {
		yy := y + float64(row)*6
		for i := 0; i < 4; i++ {
			dx := -r*0.8 + float64(i)*r*0.4
			pdf.Arc(x+dx+r*0.2, yy, r*0.2, 3, 0, 180, 360, "D")
		}
	}
}

func drawShore(pdf *gofpdf.Fpdf, x, y, r float64) {
	for i := 0; i < 5; i++ {
		dx := -r + float64(i)*r*0.4
		dy := 3 * float64(i%2)
		pdf.Line(x+dx, y+r*0.2+dy, x+dx+r*0.4, y+r*0.2-dy)
	}
	pdf.Circle(x+r*0.3, y-r*0.4, 4, "D")
}

func drawRuins(pdf *gofpdf.Fpdf, x, y, r float64) {
	for i, dx := range []float64{-r * 0.5, 0, r * 0.5} {
		h := r * (0.7 - 0.2*float64(i%2))
		pdf.Rect(x+dx-3, y+r*0.4-h, 6, h, "D")
	}
	pdf.Line(x-r*0.7, y+r*0.4, x+r*0.7, y+r*0.4)
}

func drawStation(pdf *gofpdf.Fpdf, x, y, r float64) {
	pdf.Circle(x, y, r*0.3, "D")
	pdf.Rect(x-r*0.9, y-r*0.12, r*0.5, r*0.24, "D")
	pdf.Rect(x+r*0.4, y-r*0.12, r*0.5, r*0.24, "D")
	pdf.Line(x, y-r*0.3, x, y-r*0.7)
	pdf.Circle(x, y-r*0.7, 2, "D")
}
