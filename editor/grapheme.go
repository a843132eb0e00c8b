package editor

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/richtext/internal/grapheme"
)

// cellStep is one grapheme cluster of a line laid out on the terminal grid.
type cellStep struct {
	Text      string
	RuneStart int // rune offset within the line
	RuneLen   int
	Cell      int // first terminal cell
	CellWidth int
}

// layoutCells lays out a single logical line (no '\n') starting at cell 0.
func layoutCells(text string, tabWidth int) []cellStep {
	clusters := grapheme.Split(text)
	if len(clusters) == 0 {
		return nil
	}

	out := make([]cellStep, 0, len(clusters))
	runeOff, cell := 0, 0
	for _, c := range clusters {
		w := graphemeCellWidth(c, cell, tabWidth)
		n := utf8.RuneCountInString(c)
		out = append(out, cellStep{
			Text:      c,
			RuneStart: runeOff,
			RuneLen:   n,
			Cell:      cell,
			CellWidth: w,
		})
		runeOff += n
		cell += w
	}
	return out
}

func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	adv := tabWidth - visualCol%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}

// runeAtCell maps a cell column to the rune offset of the grapheme it falls
// on. Columns past the end map to the line length.
func runeAtCell(steps []cellStep, x int) int {
	for _, st := range steps {
		if x < st.Cell+st.CellWidth {
			return st.RuneStart
		}
	}
	if len(steps) == 0 {
		return 0
	}
	last := steps[len(steps)-1]
	return last.RuneStart + last.RuneLen
}
