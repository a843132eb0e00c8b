package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/richtext/buffer"
	"github.com/iw2rmb/richtext/engine"
	"github.com/iw2rmb/richtext/session"
	"github.com/iw2rmb/richtext/style"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.edit(func() (session.Result, error) { return m.sess.InsertText(normalizeNewlines(string(msg.Runes))) })
		}
		m.sync("")
		return m, nil
	}

	km := m.cfg.KeyMap
	rule := engine.Rule("")

	switch {
	case key.Matches(msg, km.Left):
		m.sess.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft}, false)
	case key.Matches(msg, km.Right):
		m.sess.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight}, false)
	case key.Matches(msg, km.Up):
		m.sess.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp}, false)
	case key.Matches(msg, km.Down):
		m.sess.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown}, false)

	case key.Matches(msg, km.ShiftLeft):
		m.sess.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft}, true)
	case key.Matches(msg, km.ShiftRight):
		m.sess.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight}, true)
	case key.Matches(msg, km.ShiftUp):
		m.sess.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp}, true)
	case key.Matches(msg, km.ShiftDown):
		m.sess.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown}, true)

	case key.Matches(msg, km.WordLeft):
		m.sess.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft}, false)
	case key.Matches(msg, km.WordRight):
		m.sess.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight}, false)

	case key.Matches(msg, km.Home):
		m.sess.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome}, false)
	case key.Matches(msg, km.End):
		m.sess.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd}, false)
	case key.Matches(msg, km.DocStart):
		m.sess.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome}, false)
	case key.Matches(msg, km.DocEnd):
		m.sess.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd}, false)

	case key.Matches(msg, km.Backspace):
		rule = m.edit(m.sess.Backspace)
	case key.Matches(msg, km.Delete):
		rule = m.edit(m.sess.DeleteForward)
	case key.Matches(msg, km.Enter):
		rule = m.edit(m.sess.Enter)

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	case key.Matches(msg, km.Bold):
		m.toggleFormat(style.Bold)
	case key.Matches(msg, km.Italic):
		m.toggleFormat(style.Italic)
	case key.Matches(msg, km.Underline):
		m.toggleFormat(style.Underline)
	case key.Matches(msg, km.Strikethrough):
		m.toggleFormat(style.Strikethrough)

	case key.Matches(msg, km.OrderedList):
		m.command("ordered list", m.sess.InsertOrderedList)
	case key.Matches(msg, km.UnorderedList):
		m.command("unordered list", m.sess.InsertUnorderedList)
	case key.Matches(msg, km.Blockquote):
		m.command("blockquote", m.sess.InsertBlockquote)
	case key.Matches(msg, km.ToggleQuote):
		m.command("toggle blockquote", m.sess.ToggleBlockquote)

	default:
		for i, b := range km.Headers {
			if key.Matches(msg, b) {
				level := style.HeaderLevels[i]
				m.command("toggle header", func(r buffer.Range) error { return m.sess.ToggleHeader(r, level) })
				m.sync("")
				return m, nil
			}
		}

		if msg.Type == tea.KeyTab {
			rule = m.edit(func() (session.Result, error) { return m.sess.InsertText("\t") })
			break
		}

		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			rule = m.edit(func() (session.Result, error) { return m.sess.InsertText(string(msg.Runes)) })
		}
	}

	m.sync(rule)
	return m, nil
}

// edit runs a text-changing session call and returns the rule that decided it.
func (m Model) edit(fn func() (session.Result, error)) engine.Rule {
	if m.cfg.ReadOnly {
		return ""
	}
	res, err := fn()
	if err != nil {
		m.log.Warn("edit rejected", "err", err)
		return ""
	}
	return res.Rule
}

// command runs a range command over the selection, or the cursor when
// nothing is selected.
func (m Model) command(name string, fn func(buffer.Range) error) {
	if m.cfg.ReadOnly {
		return
	}
	r, _ := m.sess.Selection()
	if err := fn(r); err != nil {
		m.log.Warn("command failed", "command", name, "range", r.String(), "err", err)
	}
}

func (m Model) toggleFormat(flag style.FormatFlag) {
	m.command("toggle "+flag.String(), func(r buffer.Range) error { return m.sess.ToggleFormat(r, flag) })
}

func (m Model) selectedText() string {
	r, ok := m.sess.Selection()
	if !ok {
		return ""
	}
	s, err := m.sess.Buffer().Slice(r)
	if err != nil {
		return ""
	}
	return s
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.selectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.log.Warn("clipboard write failed", "err", err)
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.selectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.log.Warn("clipboard write failed", "err", err)
		return
	}
	m.edit(m.sess.Backspace)
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.cfg.ReadOnly {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.log.Warn("clipboard read failed", "err", err)
		return
	}
	if s == "" {
		return
	}
	m.edit(func() (session.Result, error) { return m.sess.InsertText(normalizeNewlines(s)) })
}

// normalizeNewlines folds newlines from external sources to '\n'.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
