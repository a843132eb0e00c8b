package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/richtext/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	if !m.focused {
		return m, cmd
	}

	// Only handle selection/cursor changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, cmd
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}

		off := m.screenToOffset(msg.X, msg.Y)
		if msg.Shift {
			anchor := m.sess.Cursor()
			if r, ok := m.sess.Selection(); ok {
				anchor = r.Start
			}
			m.mouseAnchor = anchor
			_ = m.sess.Select(anchor, off)
		} else {
			m.mouseAnchor = off
			_ = m.sess.SetCursor(off)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, cmd
		}

		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		_ = m.sess.Select(m.mouseAnchor, m.screenToOffset(x, y))

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	m.sync("")
	return m, cmd
}

// screenToOffset maps viewport-local cells to a rune offset. Cells in the
// gutter map to the line start; cells past the text map to the line end.
func (m Model) screenToOffset(x, y int) int {
	b := m.sess.Buffer()
	row := y + m.viewport.YOffset
	if row < 0 {
		row = 0
	}
	if last := b.LineCount() - 1; row > last {
		row = last
	}
	start, _ := b.OffsetFromPos(buffer.Pos{Row: row}, buffer.ConvertPolicy{ClampMode: buffer.OffsetClamp})
	_, _, text := b.LineAt(start)

	x -= m.gutterWidth()
	if x < 0 {
		x = 0
	}
	return start + runeAtCell(layoutCells(text, m.cfg.TabWidth), x)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		if x < 0 {
			x = 0
		}
		if x >= m.viewport.Width {
			x = m.viewport.Width - 1
		}
	}
	if m.viewport.Height > 0 {
		if y < 0 {
			y = 0
		}
		if y >= m.viewport.Height {
			y = m.viewport.Height - 1
		}
	}
	return x, y
}
