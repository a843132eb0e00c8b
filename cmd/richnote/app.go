package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/richtext/editor"
	"github.com/iw2rmb/richtext/internal/notes"
)

type appKeys struct {
	Save key.Binding
	Quit key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q", "esc"), key.WithHelp("esc", "save & quit")),
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
)

// savedMsg reports the outcome of a save.
type savedMsg struct {
	note    notes.Note
	changed bool
	err     error
}

// app hosts one note in the editor.
type app struct {
	ctx   context.Context
	store *notes.Store
	note  notes.Note
	log   *slog.Logger

	editor editor.Model
	help   help.Model
	keys   appKeys

	status   string
	err      error
	quitting bool
	dirty    bool
}

func newApp(ctx context.Context, store *notes.Store, n notes.Note, cb editor.Clipboard, log *slog.Logger) (app, error) {
	buf, err := n.Buffer()
	if err != nil {
		return app{}, fmt.Errorf("decode note %s: %w", n.ID, err)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	a := app{
		ctx:   ctx,
		store: store,
		note:  n,
		log:   log.With("note", n.ID),
		help:  help.New(),
		keys:  defaultAppKeys(),
	}
	a.editor = editor.New(editor.Config{
		Buffer:    buf,
		Style:     editor.DefaultStyle(),
		Clipboard: cb,
		Logger:    a.log,
	})
	a.status = fmt.Sprintf("revision %d", n.Revision)
	return a, nil
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, max(msg.Height-2, 0))
		return a, nil

	case savedMsg:
		if msg.err != nil {
			a.err = msg.err
			a.quitting = false
			a.log.Error("save failed", "err", msg.err)
			return a, nil
		}
		a.err = nil
		a.note = msg.note
		a.dirty = false
		if msg.changed {
			a.status = fmt.Sprintf("saved revision %d", msg.note.Revision)
		} else {
			a.status = "no changes"
		}
		if a.quitting {
			return a, tea.Quit
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Save):
			return a, a.save()
		case key.Matches(msg, a.keys.Quit):
			a.quitting = true
			return a, a.save()
		}
	}

	before := a.editor.Buffer().Version()
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	if a.editor.Buffer().Version() != before {
		a.dirty = true
	}
	return a, cmd
}

// save snapshots the buffer now and writes it in the background.
func (a app) save() tea.Cmd {
	doc := a.editor.Buffer().Clone()
	ctx, store, id := a.ctx, a.store, a.note.ID
	return func() tea.Msg {
		n, changed, err := store.Save(ctx, id, doc)
		return savedMsg{note: n, changed: changed, err: err}
	}
}

func (a app) View() string {
	status := statusStyle.Render(a.status)
	if a.dirty {
		status = statusStyle.Render("modified")
	}
	if a.err != nil {
		status = errorStyle.Render(a.err.Error())
	}
	top := titleStyle.Render(a.note.Title) + "  " + status
	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		a.editor.View(),
		a.help.ShortHelpView(append(a.editor.KeyMap().ShortHelp(), a.keys.Save, a.keys.Quit)),
	)
}
