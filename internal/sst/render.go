package sst

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/picotrek/internal/core"
)

// Display size the game lays its panels out for.
const (
	ScreenWidth  = 40
	ScreenHeight = 12
)

// drawFrame outlines r with box drawing runes.
func drawFrame(d core.Display, r core.Rect) {
	right, bottom := r.Right()-1, r.Bottom()-1
	d.DrawLine(r.X+1, r.Y, right-1, r.Y, '─')
	d.DrawLine(r.X+1, bottom, right-1, bottom, '─')
	d.DrawLine(r.X, r.Y+1, r.X, bottom-1, '│')
	d.DrawLine(right, r.Y+1, right, bottom-1, '│')
	d.DrawText(r.X, r.Y, "┌")
	d.DrawText(right, r.Y, "┐")
	d.DrawText(r.X, bottom, "└")
	d.DrawText(right, bottom, "┘")
}

// drawStatus draws the bridge status panel.
func drawStatus(d core.Display, s *Session) {
	ship := s.Ship()
	counts := s.universe.CountAll()

	d.Clear()
	drawFrame(d, core.NewRect(0, 0, ScreenWidth, ScreenHeight))
	d.DrawText(2, 1, "USS ENTERPRISE")
	d.DrawLine(1, 2, ScreenWidth-2, 2, '─')

	rows := [][2]string{
		{"Condition", s.Condition().String()},
		{"Stardate", strconv.FormatFloat(s.stardate, 'f', 1, 64)},
		{"Location", ship.Pos().String()},
		{"Energy", fmt.Sprintf("%.0f", ship.Energy())},
		{"Torpedoes", strconv.Itoa(ship.Torpedoes())},
	}
	for i, row := range rows {
		d.DrawText(2, 4+i, fmt.Sprintf("%-11s%s", row[0], row[1]))
	}
	d.DrawText(25, 4, fmt.Sprintf("Klingons %3d", counts.Of(KindHostile)))
	d.DrawText(25, 5, fmt.Sprintf("Bases    %3d", counts.Of(KindBase)))
}

// drawShortRange draws one sector with axis labels and a legend.
func drawShortRange(d core.Display, v SectorView) {
	d.Clear()
	d.DrawText(0, 0, fmt.Sprintf("SRS  Sector %d,%d", v.Sector.X, v.Sector.Y))
	for i := range SectorSize {
		d.DrawText(4+2*i, 1, strconv.Itoa(i))
		d.DrawText(0, 3+i, strconv.Itoa(i))
	}
	drawFrame(d, core.NewRect(2, 2, 2*SectorSize+3, SectorSize+2))
	for y := range SectorSize {
		for x := range SectorSize {
			r := '.'
			if e, ok := v.At(x, y); ok {
				r = glyph(e)
			}
			d.DrawText(4+2*x, 3+y, string(r))
		}
	}

	legend := []string{"E Enterprise", "K Klingon", "B Star Base", "* Star", "P Planet"}
	for i, l := range legend {
		d.DrawText(24, 3+i, l)
	}
}

// drawLongRange draws the 3x3 scanner codes in a grid.
func drawLongRange(d core.Display, center Point, scans [3][3]SectorScan) {
	const (
		left, top = 2, 2
		cellW     = 6
		cellH     = 2
	)
	d.Clear()
	d.DrawText(0, 0, fmt.Sprintf("LRS  Sector %d,%d", center.X, center.Y))

	width, height := 3*cellW, 3*cellH
	for i := 0; i <= 3; i++ {
		d.DrawLine(left, top+i*cellH, left+width, top+i*cellH, '─')
		d.DrawLine(left+i*cellW, top, left+i*cellW, top+height, '│')
	}
	for i := 0; i <= 3; i++ {
		for j := 0; j <= 3; j++ {
			d.DrawText(left+i*cellW, top+j*cellH, string(junction(i, j, 3)))
		}
	}
	for row := range 3 {
		for col := range 3 {
			d.DrawText(left+col*cellW+2, top+row*cellH+1, scans[row][col].Code())
		}
	}
	d.DrawText(left, top+height+2, "Klingons, bases, stars per sector")
}

// junction picks the box drawing rune for grid line crossing (i, j) of an
// n by n grid.
func junction(i, j, n int) rune {
	runes := [3][3]rune{
		{'┌', '┬', '┐'},
		{'├', '┼', '┤'},
		{'└', '┴', '┘'},
	}
	return runes[band(j, n)][band(i, n)]
}

func band(i, n int) int {
	switch i {
	case 0:
		return 0
	case n:
		return 2
	default:
		return 1
	}
}

// mapPages renders the scan cache as one text map per kind. Sectors never
// scanned print as '?'.
func mapPages(s *Session) []string {
	var out []string
	for _, kind := range []Kind{KindHostile, KindBase, KindStar} {
		out = append(out, "Map of "+kind.String()+"s", "* 01234567")
		for y := range Sectors {
			var b strings.Builder
			b.WriteString(strconv.Itoa(y))
			b.WriteByte(' ')
			for x := range Sectors {
				c, ok := s.Scan(Point{X: x, Y: y})
				if !ok {
					b.WriteByte('?')
					continue
				}
				b.WriteRune(digit(c.Of(kind)))
			}
			out = append(out, b.String())
		}
		out = append(out, "----------")
	}
	return out
}

// fireControlLines describes each bearing on its own line.
func fireControlLines(bearings []Bearing) []string {
	out := []string{CmdFireCtl}
	if len(bearings) == 0 {
		return append(out, "No objects in this sector.")
	}
	for _, b := range bearings {
		l := b.Target.Pos().Local()
		out = append(out, fmt.Sprintf("The %s at %d,%d is at heading %.0f and distance %.1f.",
			b.Target.Kind(), l.X, l.Y, b.Heading, b.Distance))
	}
	return out
}

// trackLine formats a torpedo track as sector-local cells.
func trackLine(track []Point) string {
	var b strings.Builder
	b.WriteString("Track:")
	for _, p := range track {
		if !p.Valid() {
			break
		}
		l := p.Local()
		fmt.Fprintf(&b, " (%d,%d)", l.X, l.Y)
	}
	return b.String()
}
