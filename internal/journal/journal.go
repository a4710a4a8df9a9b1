// Package journal renders a game session as a printable PDF adventure
// journal: the route travelled so far drawn as illustrated stops on
// parchment, followed by the character sheet and what the player carries.
package journal

import (
	"bytes"
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"taleforge/internal/game"
)

const (
	pageW     = 595
	pageH     = 842
	margin    = 40
	sceneSize = 56.0
	pathStep  = 110.0
	perRow    = 4
	maxStops  = 16
	fontSize  = 9
	titleSize = 18
	labelSize = 7
	lineH     = 12.0
)

type stop struct {
	name    string
	scenery Scenery
	current bool
	battle  bool
}

// Route lists the locations to draw: every visited location in order, then
// the current one. Only the most recent maxStops are kept.
func Route(st game.Session) []string {
	route := make([]string, 0, len(st.VisitedLocations)+1)
	for _, loc := range st.VisitedLocations {
		if loc != st.Location {
			route = append(route, loc)
		}
	}
	if st.Location != "" {
		route = append(route, st.Location)
	}
	if len(route) > maxStops {
		route = route[len(route)-maxStops:]
	}
	return route
}

// Generate returns the PDF bytes of st's journal.
func Generate(st game.Session) ([]byte, error) {
	_, engaged := st.ActiveEnemy()
	var stops []stop
	for _, loc := range Route(st) {
		cur := loc == st.Location
		stops = append(stops, stop{name: loc, scenery: SceneryFor(loc), current: cur, battle: cur && engaged})
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFillColor(245, 235, 210)
	pdf.Rect(0, 0, pageW, pageH, "F")
	drawWavyBorder(pdf)

	pdf.SetDrawColor(80, 50, 30)
	pdf.SetTextColor(80, 50, 30)
	pdf.SetLineWidth(1)

	// Casers carry state, so each call builds its own.
	titleCase := cases.Title(language.English)
	name := st.PlayerName
	if name == "" {
		name = game.DefaultPlayerName
	}
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(margin+16, margin+14)
	pdf.CellFormat(360, 20, tr(titleCase.String(name)+"'s Journal"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "I", fontSize)
	pdf.SetXY(margin+16, margin+36)
	pdf.CellFormat(360, 10, tr(titleCase.String(string(st.Genre))+" adventure"), "", 0, "L", false, 0, "")

	drawCompassRose(pdf, pageW-margin-50, margin+46)

	positions := layout(len(stops))
	drawPath(pdf, positions)
	for i, s := range stops {
		x, y := positions[i][0], positions[i][1]
		drawScene(pdf, x, y, s.scenery, s.battle, s.current)
		pdf.SetFont("Helvetica", "B", labelSize)
		pdf.SetTextColor(40, 25, 15)
		pdf.SetXY(x-pathStep/2, y+sceneSize/2+4)
		pdf.CellFormat(pathStep, 10, tr(label(s.name)), "", 0, "C", false, 0, "")
		if s.current {
			pdf.SetFont("Helvetica", "I", labelSize)
			pdf.SetXY(x-sceneSize/2, y+sceneSize/2+14)
			pdf.CellFormat(sceneSize, 8, "You are here", "", 0, "C", false, 0, "")
		}
	}

	rows := int(math.Ceil(float64(len(stops)) / perRow))
	top := float64(margin) + 110 + float64(max(rows, 1))*pathStep
	writeSheet(pdf, tr, st, top)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render journal: %w", err)
	}
	return buf.Bytes(), nil
}

// layout winds n stops across the page, reversing direction every row.
func layout(n int) [][2]float64 {
	positions := make([][2]float64, n)
	x0 := float64(margin) + 70
	y0 := float64(margin) + 120
	for i := range positions {
		row, col := i/perRow, i%perRow
		if row%2 == 1 {
			col = perRow - 1 - col
		}
		positions[i] = [2]float64{x0 + float64(col)*pathStep, y0 + float64(row)*pathStep}
	}
	return positions
}

func drawPath(pdf *gofpdf.Fpdf, positions [][2]float64) {
	pdf.SetDrawColor(180, 40, 40)
	pdf.SetLineWidth(2)
	pdf.SetDashPattern([]float64{10, 6}, 0)
	for i := 0; i+1 < len(positions); i++ {
		pdf.Line(positions[i][0], positions[i][1], positions[i+1][0], positions[i+1][1])
	}
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)
}

// label is the upper-cased stop name, shortened to fit under a scene.
func label(name string) string {
	r := []rune(cases.Upper(language.English).String(name))
	if len(r) > 22 {
		return string(r[:19]) + "..."
	}
	return string(r)
}

func writeSheet(pdf *gofpdf.Fpdf, tr func(string) string, st game.Session, top float64) {
	colW := (float64(pageW) - 2*margin - 32) / 2
	left := float64(margin) + 16
	right := left + colW + 16

	heading(pdf, left, top, "Character")
	lines := []string{
		fmt.Sprintf("Level %d", st.Level),
		fmt.Sprintf("HP %d / %d", st.HP, st.MaxHP),
		fmt.Sprintf("XP %d / %d", st.XP, st.XPToNextLevel),
		fmt.Sprintf("Gold %d", st.Gold),
		"Location: " + st.Location,
	}
	if enemy, ok := st.ActiveEnemy(); ok {
		lines = append(lines, fmt.Sprintf("Fighting: %s (HP %d/%d)", enemy.Name, enemy.HP, enemy.MaxHP))
	}
	if st.GameOver {
		lines = append(lines, "The adventure has ended.")
	}
	y := writeLines(pdf, tr, left, top+18, colW, lines)

	heading(pdf, left, y+10, "Defeated")
	defeated := st.DefeatedEnemies
	if len(defeated) == 0 {
		defeated = []string{"None yet"}
	}
	writeLines(pdf, tr, left, y+28, colW, defeated)

	heading(pdf, right, top, "Inventory")
	items := inventoryLines(st.Inventory)
	if len(items) == 0 {
		items = []string{"Empty"}
	}
	writeLines(pdf, tr, right, top+18, colW, items)
}

func heading(pdf *gofpdf.Fpdf, x, y float64, text string) {
	pdf.SetFont("Helvetica", "B", fontSize+2)
	pdf.SetTextColor(80, 50, 30)
	pdf.SetXY(x, y)
	pdf.CellFormat(120, 14, text, "B", 0, "L", false, 0, "")
}

// writeLines writes one line per entry, stopping at the bottom border, and
// returns the y below the last line.
func writeLines(pdf *gofpdf.Fpdf, tr func(string) string, x, y, w float64, lines []string) float64 {
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetTextColor(40, 25, 15)
	limit := float64(pageH) - margin - 2*lineH
	for _, l := range lines {
		if y > limit {
			pdf.SetXY(x, y)
			pdf.CellFormat(w, lineH, "...", "", 0, "L", false, 0, "")
			return y + lineH
		}
		pdf.SetXY(x, y)
		pdf.CellFormat(w, lineH, tr(l), "", 0, "L", false, 0, "")
		y += lineH
	}
	return y
}

// inventoryLines groups duplicates, keeping first-acquired order.
func inventoryLines(inv []string) []string {
	var order []string
	counts := map[string]int{}
	for _, it := range inv {
		if counts[it] == 0 {
			order = append(order, it)
		}
		counts[it]++
	}
	out := make([]string, 0, len(order))
	for _, it := range order {
		if counts[it] > 1 {
			out = append(out, fmt.Sprintf("%s x%d", it, counts[it]))
		} else {
			out = append(out, it)
		}
	}
	return out
}

func drawWavyBorder(pdf *gofpdf.Fpdf) {
	pts := wavyRectPoints(margin, margin, pageW-2*margin, pageH-2*margin, 14, 4)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(2)
	pdf.Polygon(pts, "D")
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)
}

// wavyRectPoints walks the rectangle clockwise with a sinusoidal wobble.
func wavyRectPoints(x, y, w, h float64, steps int, amp float64) []gofpdf.PointType {
	edges := []struct {
		x0, y0, dx, dy float64
		fx, fy         float64
	}{
		{x, y, w, 0, 0.7, 0.5},
		{x + w, y, 0, h, 0.6, 0.4},
		{x + w, y + h, -w, 0, 0.8, 0.3},
		{x, y + h, 0, -h, 0.5, 0.6},
	}
	pts := make([]gofpdf.PointType, 0, steps*4+1)
	for e, edge := range edges {
		start := 1
		if e == 0 {
			start = 0
		}
		for i := start; i <= steps; i++ {
			t := float64(i) / float64(steps)
			pts = append(pts, gofpdf.PointType{
				X: edge.x0 + t*edge.dx + amp*math.Sin(float64(i)*edge.fx),
				Y: edge.y0 + t*edge.dy + amp*math.Cos(float64(i)*edge.fy),
			})
		}
	}
	return pts
}

func drawCompassRose(pdf *gofpdf.Fpdf, cx, cy float64) {
	const rad = 22.0
	pdf.SetDrawColor(101, 67, 33)
	pdf.SetLineWidth(1)
	pdf.Circle(cx, cy, rad, "D")
	for i := 0; i < 8; i++ {
		angle := float64(i)*math.Pi/4 - math.Pi/2
		if i%2 == 0 {
			pdf.SetDrawColor(180, 40, 40)
			pdf.SetLineWidth(1.5)
		} else {
			pdf.SetDrawColor(180, 140, 60)
			pdf.SetLineWidth(1)
		}
		pdf.Line(cx, cy, cx+rad*math.Cos(angle), cy+rad*math.Sin(angle))
	}
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(80, 50, 30)
	for _, p := range []struct {
		label  string
		dx, dy float64
	}{
		{"N", 0, -rad - 10},
		{"S", 0, rad + 10},
		{"E", rad + 8, 0},
		{"W", -rad - 8, 0},
	} {
		pdf.SetXY(cx+p.dx-4, cy+p.dy-3)
		pdf.CellFormat(8, 6, p.label, "", 0, "C", false, 0, "")
	}
}
