package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/richtext/buffer"
	"github.com/iw2rmb/richtext/style"
)

// segment is a run of adjacent cells sharing one rendered style.
type segment struct {
	attrs    style.Attributes
	selected bool
	cursor   bool
	text     strings.Builder
}

func (m *Model) renderContent() string {
	b := m.sess.Buffer()
	lines := strings.Split(b.Text(), "\n")
	runs := b.Runs()
	cursor := m.sess.Cursor()
	sel, selOK := m.sess.Selection()
	cursorRow, _ := b.PosFromOffset(cursor, buffer.ConvertPolicy{ClampMode: buffer.OffsetClamp})

	digits := gutterDigits(len(lines))

	var out strings.Builder
	lineStart := 0
	ri := 0
	for row, raw := range lines {
		if row > 0 {
			out.WriteByte('\n')
		}
		if m.cfg.ShowLineNums {
			num := m.cfg.Style.LineNum
			if m.focused && row == cursorRow.Row {
				num = m.cfg.Style.LineNumActive
			}
			out.WriteString(num.Render(fmt.Sprintf("%*d", digits, row+1)))
			out.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		var cur *segment
		flush := func() {
			if cur == nil {
				return
			}
			out.WriteString(m.segmentStyle(cur).Render(cur.text.String()))
			cur = nil
		}

		for _, st := range layoutCells(raw, m.cfg.TabWidth) {
			off := lineStart + st.RuneStart
			for ri < len(runs)-1 && runs[ri].End <= off {
				ri++
			}
			var attrs style.Attributes
			if ri < len(runs) {
				attrs = runs[ri].Attrs
			}
			isCursor := m.focused && off == cursor
			selected := selOK && sel.Contains(off)
			if cur == nil || cur.attrs != attrs || cur.selected != selected || cur.cursor || isCursor {
				flush()
				cur = &segment{attrs: attrs, selected: selected, cursor: isCursor}
			}
			if st.Text == "\t" {
				cur.text.WriteString(strings.Repeat(" ", st.CellWidth))
			} else {
				cur.text.WriteString(st.Text)
			}
		}
		flush()

		lineEnd := lineStart + len([]rune(raw))
		if m.focused && cursor == lineEnd {
			out.WriteString(m.cfg.Style.Cursor.Render(" "))
		}
		lineStart = lineEnd + 1
	}
	return out.String()
}

func (m *Model) segmentStyle(s *segment) lipgloss.Style {
	base := m.cfg.Style.fontStyle(s.attrs)
	switch {
	case s.cursor:
		return m.cfg.Style.Cursor.Inherit(base)
	case s.selected:
		return m.cfg.Style.Selection.Inherit(base)
	default:
		return base
	}
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

// gutterWidth is the number of cells in front of the text on every row.
func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.sess.Buffer().LineCount()) + 1
}
