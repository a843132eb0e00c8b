package editor

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/richtext/buffer"
	"github.com/iw2rmb/richtext/engine"
	"github.com/iw2rmb/richtext/session"
)

// Model is a Bubble Tea component that renders and interacts with a styled
// text session.
type Model struct {
	cfg  Config
	sess *session.Session
	log  *slog.Logger

	focused bool

	viewport viewport.Model

	lastBufVersion uint64
	lastCursor     int
	lastSel        buffer.Range
	lastSelOK      bool

	mouseDragging bool
	mouseAnchor   int
}

func New(cfg Config) Model {
	cfg = cfg.normalized()
	buf := cfg.Buffer
	if buf == nil {
		buf = buffer.NewText(cfg.Text, cfg.Typing)
	}
	m := Model{
		cfg:      cfg,
		sess:     session.New(buf, session.Options{Typing: cfg.Typing, Logger: cfg.Logger}),
		log:      cfg.Logger,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.remember()
	m.rebuildContent()
	return m
}

// Session exposes the underlying session for host-driven commands.
func (m Model) Session() *session.Session { return m.sess }

func (m Model) Buffer() *buffer.Buffer { return m.sess.Buffer() }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		// Hosts may drive the session directly; pick up whatever changed.
		m.sync("")
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// sync re-renders after a change and reports it through OnChange. It
// returns false when nothing changed.
func (m *Model) sync(rule engine.Rule) bool {
	b := m.sess.Buffer()
	sel, selOK := m.sess.Selection()
	if b.Version() == m.lastBufVersion && m.sess.Cursor() == m.lastCursor &&
		selOK == m.lastSelOK && (!selOK || sel == m.lastSel) {
		return false
	}
	m.remember()
	m.rebuildContent()
	m.followCursor()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.sess, rule))
	}
	return true
}

func (m *Model) remember() {
	m.lastBufVersion = m.sess.Buffer().Version()
	m.lastCursor = m.sess.Cursor()
	m.lastSel, m.lastSelOK = m.sess.Selection()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	cur, _ := m.sess.Buffer().PosFromOffset(m.sess.Cursor(), buffer.ConvertPolicy{ClampMode: buffer.OffsetClamp})
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
