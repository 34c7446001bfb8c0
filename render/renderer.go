package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/mud-r1/constants"
	"github.com/lixenwraith/mud-r1/momentum"
	"github.com/lixenwraith/mud-r1/nav"
	"github.com/lixenwraith/mud-r1/session"
	"github.com/lixenwraith/mud-r1/world"
)

const (
	minStatsWidth = 20
	menuCellWidth = 8
	mapCellWidth  = 2
)

// Snapshot is everything one frame draws
type Snapshot struct {
	Mode    nav.Mode
	Menu    nav.Menu
	Session *session.Session
	Scroll  momentum.ScrollState
	Now     time.Time
}

// Renderer projects a Snapshot onto the terminal
type Renderer struct {
	screen tcell.Screen
	log    *LogView
	base   tcell.Style
}

// NewRenderer creates a renderer drawing the event log through view
func NewRenderer(screen tcell.Screen, view *LogView) *Renderer {
	return &Renderer{
		screen: screen,
		log:    view,
		base:   tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText),
	}
}

// MinSize returns the smallest terminal that fits every panel
func MinSize() (width, height int) {
	return constants.MapPanelWidth + minStatsWidth, 1 + constants.TopRowHeight + constants.MinLogRows + 2 + 1
}

// Draw renders the full frame and shows it
func (r *Renderer) Draw(s Snapshot) {
	r.screen.Fill(' ', r.base)
	width, height := r.screen.Size()

	minW, minH := MinSize()
	if width < minW || height < minH {
		r.log.Unmount()
		r.drawTooSmall(width, height)
		r.screen.Show()
		return
	}

	r.drawHeader(width, s.Now)
	r.drawMap(s)
	r.drawStats(width, s)
	r.drawLog(width, height, s)
	r.drawLegend(width, height)

	if s.Mode.Kind == nav.ModeMenuOpen {
		r.drawMenu(width, height, s)
	}

	r.screen.Show()
}

func (r *Renderer) drawTooSmall(width, height int) {
	msg := "Terminal too small"
	drawText(r.screen, centerX(0, width, msg), height/2, width, msg, r.base.Foreground(RgbMenuCancel))
}

func (r *Renderer) drawHeader(width int, now time.Time) {
	style := tcell.StyleDefault.Background(RgbHeaderBg).Foreground(RgbHeaderFg)
	fillRow(r.screen, 0, 0, width, ' ', style)

	drawText(r.screen, 1, 0, width-1, constants.HeaderLeft, style.Bold(true))
	drawText(r.screen, centerX(0, width, constants.HeaderCenter), 0, width, constants.HeaderCenter, style)

	clock := now.Format(constants.ClockFormat)
	drawText(r.screen, width-1-runewidth.StringWidth(clock), 0, width, clock, style)
}

// drawBox draws a single-line border with a title on the top edge
func (r *Renderer) drawBox(x, y, w, h int, title string, border tcell.Style) {
	right, bottom := x+w-1, y+h-1
	for i := x + 1; i < right; i++ {
		r.screen.SetContent(i, y, tcell.RuneHLine, nil, border)
		r.screen.SetContent(i, bottom, tcell.RuneHLine, nil, border)
	}
	for j := y + 1; j < bottom; j++ {
		r.screen.SetContent(x, j, tcell.RuneVLine, nil, border)
		r.screen.SetContent(right, j, tcell.RuneVLine, nil, border)
	}
	r.screen.SetContent(x, y, tcell.RuneULCorner, nil, border)
	r.screen.SetContent(right, y, tcell.RuneURCorner, nil, border)
	r.screen.SetContent(x, bottom, tcell.RuneLLCorner, nil, border)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, border)

	if title != "" {
		drawText(r.screen, x+2, y, w-4, " "+title+" ", r.base.Foreground(RgbTitle).Bold(true))
	}
}

// borderFor picks the border color of a panel from the active mode
func (r *Renderer) borderFor(p nav.Panel, mode nav.Mode) tcell.Style {
	switch mode.Kind {
	case nav.ModeBrowsing:
		if mode.Panel == p {
			return r.base.Foreground(RgbBorderSelected)
		}
	case nav.ModeMenuOpen:
		if p == nav.PanelMap {
			return r.base.Foreground(RgbBorderSelected)
		}
	case nav.ModeLogScrolling:
		if p == nav.PanelLog {
			return r.base.Foreground(RgbBorderScroll)
		}
	}
	return r.base.Foreground(RgbBorder)
}

func (r *Renderer) drawMap(s Snapshot) {
	x, y := 0, 1
	w, h := constants.MapPanelWidth, constants.TopRowHeight
	r.drawBox(x, y, w, h, constants.PanelTitleMap, r.borderFor(nav.PanelMap, s.Mode))

	pos := s.Session.Position()
	grid := s.Session.Grid()
	radius := constants.ViewRadius
	span := (2*radius + 1) * mapCellWidth
	left := x + 1 + (w-2-span)/2

	for dy := -radius; dy <= radius; dy++ {
		row := y + 1 + dy + radius
		for dx := -radius; dx <= radius; dx++ {
			cx := left + (dx+radius)*mapCellWidth

			if dx == 0 && dy == 0 {
				r.screen.SetContent(cx, row, '@', nil, r.base.Foreground(RgbPlayer).Bold(true))
				continue
			}
			t := grid.TileAt(pos.X+dx, pos.Y+dy)
			if t == world.TerrainUnknown {
				continue
			}
			r.screen.SetContent(cx, row, t.Glyph(), nil, r.base.Foreground(TerrainColor(t)))
		}
	}

	footer := "Pos: " + pos.String()
	drawText(r.screen, centerX(x+1, w-2, footer), y+h-2, w-2, footer, r.base.Foreground(RgbDim))
}

func (r *Renderer) drawStats(width int, s Snapshot) {
	x, y := constants.MapPanelWidth, 1
	w, h := width-constants.MapPanelWidth, constants.TopRowHeight
	r.drawBox(x, y, w, h, constants.PanelTitleStats, r.borderFor(nav.PanelStats, s.Mode))

	inner := w - 4
	left := x + 2
	row := y + 1
	label := r.base.Foreground(RgbDim)
	value := r.base.Foreground(RgbText).Bold(true)

	n := drawText(r.screen, left, row, inner, "TERRAIN: ", label)
	drawText(r.screen, left+n, row, inner-n, s.Session.Terrain().Label(), r.base.Foreground(TerrainColor(s.Session.Terrain())).Bold(true))
	row++

	n = drawText(r.screen, left, row, inner, "MOVES:   ", label)
	drawText(r.screen, left+n, row, inner-n, fmt.Sprintf("%d", s.Session.Moves()), value)
	row += 2

	drawText(r.screen, left, row, inner, "VISIBLE AREA", label)
	row++

	side := 2*constants.ViewRadius + 1
	window := side * side
	counts := s.Session.Stats(constants.ViewRadius)
	for _, t := range world.TerrainKinds {
		if row >= y+h-1 {
			break
		}
		r.drawStatBar(left, row, inner, t, counts.Of(t), window)
		row++
	}
}

// drawStatBar draws "F ██████░░░░ 12"
func (r *Renderer) drawStatBar(x, y, maxWidth int, t world.Terrain, count, window int) {
	r.screen.SetContent(x, y, t.Glyph(), nil, r.base.Foreground(TerrainColor(t)))

	filled := 0
	if window > 0 {
		filled = count * constants.StatBarWidth / window
	}
	if count > 0 && filled == 0 {
		filled = 1
	}

	fill := r.base.Foreground(RgbBarFill)
	empty := r.base.Foreground(RgbBarEmpty)
	bx := x + 2
	for i := 0; i < constants.StatBarWidth && bx+i < x+maxWidth; i++ {
		if i < filled {
			r.screen.SetContent(bx+i, y, '█', nil, fill)
		} else {
			r.screen.SetContent(bx+i, y, '░', nil, empty)
		}
	}

	num := fmt.Sprintf("%d", count)
	cx := bx + constants.StatBarWidth + 1
	drawText(r.screen, cx, y, x+maxWidth-cx, num, r.base)
}

type logLine struct {
	text  string
	style tcell.Style
}

// layoutLog wraps every entry to width: a numbered header line, the body, and a blank separator
func (r *Renderer) layoutLog(entries []session.LogEntry, width int) []logLine {
	header := r.base.Foreground(RgbLogHeader).Bold(true)
	lines := make([]logLine, 0, len(entries)*4)

	for i, e := range entries {
		if i > 0 {
			lines = append(lines, logLine{})
		}
		title := fmt.Sprintf("[%d] %s - %s", i+1, e.At.Format(constants.ClockFormat), e.Title)
		for _, l := range wrapText(title, width) {
			lines = append(lines, logLine{text: l, style: header})
		}
		for _, l := range wrapText(e.Body, width) {
			lines = append(lines, logLine{text: l, style: r.base})
		}
	}
	return lines
}

func (r *Renderer) drawLog(width, height int, s Snapshot) {
	x, y := 0, 1+constants.TopRowHeight
	w, h := width, height-y-1

	title := fmt.Sprintf("%s (%d)", constants.PanelTitleLog, s.Session.LogLen())
	if s.Mode.Kind == nav.ModeLogScrolling {
		title += constants.ScrollModeTag
	}
	r.drawBox(x, y, w, h, title, r.borderFor(nav.PanelLog, s.Mode))

	innerW, innerH := w-4, h-2
	if innerW < constants.MinLogWidth || innerH < constants.MinLogRows {
		r.log.Unmount()
		return
	}

	lines := r.layoutLog(s.Session.Entries(), innerW)
	r.log.Layout(len(lines), innerH)

	first := r.log.FirstLine()
	for i := 0; i < innerH && first+i < len(lines); i++ {
		l := lines[first+i]
		drawText(r.screen, x+2, y+1+i, innerW, l.text, l.style)
	}

	// position indicator on the bottom border when the log overflows
	if len(lines) > innerH {
		last := first + innerH
		if last > len(lines) {
			last = len(lines)
		}
		pos := fmt.Sprintf(" %d-%d/%d ", first+1, last, len(lines))
		if s.Scroll.Armed {
			if s.Scroll.Direction > 0 {
				pos = " ▼" + pos
			} else if s.Scroll.Direction < 0 {
				pos = " ▲" + pos
			}
		}
		px := x + w - 2 - runewidth.StringWidth(pos)
		drawText(r.screen, px, y+h-1, w-2, pos, r.base.Foreground(RgbDim))
	}
}

func (r *Renderer) drawLegend(width, height int) {
	y := height - 1
	style := r.base.Foreground(RgbDim)
	n := drawText(r.screen, 1, y, width-1, constants.LegendText, style)

	help := constants.HelpText
	hx := width - 1 - runewidth.StringWidth(help)
	if hx > n+3 {
		drawText(r.screen, hx, y, width-hx, help, style)
	}
}

func (r *Renderer) drawMenu(width, height int, s Snapshot) {
	options := s.Menu.Options()
	rows := (len(options) + constants.MenuColumns - 1) / constants.MenuColumns

	innerW := constants.MenuColumns * menuCellWidth
	if fw := runewidth.StringWidth(constants.MenuFooter); fw > innerW {
		innerW = fw
	}
	w := innerW + 4
	h := rows + 4
	x := (width - w) / 2
	y := (height - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 1 {
		y = 1
	}

	for j := y; j < y+h; j++ {
		fillRow(r.screen, x, j, w, ' ', r.base)
	}
	r.drawBox(x, y, w, h, constants.PanelTitleMenu, r.base.Foreground(RgbBorderSelected))

	gridLeft := x + 2 + (innerW-constants.MenuColumns*menuCellWidth)/2
	for i, opt := range options {
		cx := gridLeft + (i%constants.MenuColumns)*menuCellWidth
		cy := y + 1 + i/constants.MenuColumns

		style := r.base
		if opt.IsCancel() {
			style = style.Foreground(RgbMenuCancel)
		}
		if i == s.Mode.Selected {
			style = style.Background(RgbMenuSelectedBg).Foreground(RgbMenuSelectedFg).Bold(true)
			fillRow(r.screen, cx, cy, menuCellWidth-1, ' ', style)
		}
		label := opt.Label()
		drawText(r.screen, centerX(cx, menuCellWidth-1, label), cy, menuCellWidth-1, label, style)
	}

	drawText(r.screen, x+2, y+h-2, innerW, constants.MenuFooter, r.base.Foreground(RgbDim))
}
