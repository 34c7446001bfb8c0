package render

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s starting at (x, y), clipped to maxWidth cells; returns cells used
func drawText(screen tcell.Screen, x, y, maxWidth int, s string, style tcell.Style) int {
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > maxWidth {
			break
		}
		screen.SetContent(x+used, y, r, nil, style)
		used += w
	}
	return used
}

// fillRow paints width cells of row y with ch
func fillRow(screen tcell.Screen, x, y, width int, ch rune, style tcell.Style) {
	for i := 0; i < width; i++ {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

// wrapText breaks s into lines no wider than width cells, splitting on spaces
// and hard-breaking words that alone exceed the width
func wrapText(s string, width int) []string {
	if width < 1 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)

		for ww > width {
			if lineWidth > 0 {
				flush()
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// a single rune wider than the line
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			lines = append(lines, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if ww == 0 {
			continue
		}

		switch {
		case lineWidth == 0:
			line.WriteString(word)
			lineWidth = ww
		case lineWidth+1+ww <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineWidth += 1 + ww
		default:
			flush()
			line.WriteString(word)
			lineWidth = ww
		}
	}
	if lineWidth > 0 {
		flush()
	}
	return lines
}

// centerX returns the x that centers text of the given width inside [x, x+span)
func centerX(x, span int, text string) int {
	w := runewidth.StringWidth(text)
	if w >= span {
		return x
	}
	return x + (span-w)/2
}
