package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/iw2rmb/richtext/buffer"
	"github.com/iw2rmb/richtext/internal/notes"
	"github.com/iw2rmb/richtext/style"
)

// NewCmd creates a note.
type NewCmd struct {
	Title string `arg:"" help:"Note title"`
	Text  string `help:"Initial text; skips the editor when set"`
}

func (c *NewCmd) Run(g *Globals) error {
	ctx := context.Background()
	store, err := g.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Create(ctx, c.Title, buffer.NewText(c.Text, style.Plain))
	if err != nil {
		return err
	}
	if c.Text != "" {
		fmt.Println(n.ID)
		return nil
	}
	return runEditor(ctx, g, store, n)
}

// EditCmd opens a note in the editor.
type EditCmd struct {
	ID string `arg:"" help:"Note ID"`
}

func (c *EditCmd) Run(g *Globals) error {
	ctx := context.Background()
	store, err := g.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Get(ctx, c.ID)
	if err != nil {
		return err
	}
	return runEditor(ctx, g, store, n)
}

func runEditor(ctx context.Context, g *Globals, store *notes.Store, n notes.Note) error {
	a, err := newApp(ctx, store, n, systemClipboard{}, g.log)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)).Run()
	return err
}

// ListCmd lists notes.
type ListCmd struct{}

func (c *ListCmd) Run(g *Globals) error {
	ctx := context.Background()
	store, err := g.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No notes")
		return nil
	}

	header := lipgloss.NewStyle().Bold(true)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return lipgloss.NewStyle()
		}).
		Headers("ID", "TITLE", "REV", "UPDATED")
	for _, n := range list {
		t.Row(n.ID, n.Title, strconv.Itoa(n.Revision), n.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Println(t.Render())
	return nil
}

// ShowCmd prints a note.
type ShowCmd struct {
	ID   string `arg:"" help:"Note ID"`
	JSON bool   `name:"json" help:"Print the stored JSON encoding, runs included"`
}

func (c *ShowCmd) Run(g *Globals) error {
	ctx := context.Background()
	store, err := g.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Get(ctx, c.ID)
	if err != nil {
		return err
	}
	if c.JSON {
		_, err = os.Stdout.Write(append(n.Body, '\n'))
		return err
	}
	b, err := n.Buffer()
	if err != nil {
		return err
	}
	fmt.Println(b.Text())
	return nil
}

// DiffCmd diffs two revisions of a note.
type DiffCmd struct {
	ID   string `arg:"" help:"Note ID"`
	From int    `help:"Older revision (default: the one before --to)"`
	To   int    `help:"Newer revision (default: latest)"`
}

func (c *DiffCmd) Run(g *Globals) error {
	ctx := context.Background()
	store, err := g.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	revs, err := store.Revisions(ctx, c.ID)
	if err != nil {
		return err
	}
	before, after, err := pickRevisions(revs, c.From, c.To)
	if err != nil {
		return err
	}
	fmt.Print(notes.RenderDiff(before, after))
	return nil
}

// pickRevisions returns the texts of revisions from and to. Zero picks the
// latest for to, and the one before to for from; a note with a single
// revision diffs against the empty text.
func pickRevisions(revs []notes.Revision, from, to int) (string, string, error) {
	if to == 0 {
		to = len(revs)
	}
	if from == 0 {
		from = to - 1
	}
	text := func(n int) (string, error) {
		if n == 0 {
			return "", nil
		}
		if n < 0 || n > len(revs) {
			return "", fmt.Errorf("no revision %d (have 1..%d)", n, len(revs))
		}
		b, err := buffer.Decode(revs[n-1].Body)
		if err != nil {
			return "", err
		}
		return b.Text(), nil
	}
	before, err := text(from)
	if err != nil {
		return "", "", err
	}
	after, err := text(to)
	if err != nil {
		return "", "", err
	}
	return before, after, nil
}

// RenameCmd renames a note.
type RenameCmd struct {
	ID    string `arg:"" help:"Note ID"`
	Title string `arg:"" help:"New title"`
}

func (c *RenameCmd) Run(g *Globals) error {
	ctx := context.Background()
	store, err := g.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Rename(ctx, c.ID, c.Title)
}

// RmCmd deletes a note.
type RmCmd struct {
	ID string `arg:"" help:"Note ID"`
}

func (c *RmCmd) Run(g *Globals) error {
	ctx := context.Background()
	store, err := g.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(ctx, c.ID); err != nil {
		if errors.Is(err, notes.ErrNotFound) {
			return fmt.Errorf("no note %s", c.ID)
		}
		return err
	}
	return nil
}
