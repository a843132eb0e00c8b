// Command richnote keeps styled notes in a local SQLite database and edits
// them in the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/iw2rmb/richtext"
	"github.com/iw2rmb/richtext/internal/logging"
	"github.com/iw2rmb/richtext/internal/notes"
)

// Globals are flags shared by every command.
type Globals struct {
	DB        string `name:"db" help:"Notes database path" type:"path" env:"RICHNOTE_DB"`
	LogFile   string `name:"log-file" help:"Write logs to this file (default: no logs)" type:"path"`
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info" enum:"debug,info,warn,error"`
	LogFormat string `name:"log-format" help:"Log format (json, text)" default:"json" enum:"json,text"`

	log    *slog.Logger `kong:"-"`
	closer io.Closer    `kong:"-"`
}

// CLI defines the command-line interface for richnote.
var CLI struct {
	Globals

	New     NewCmd     `cmd:"" help:"Create a note and open it in the editor"`
	Edit    EditCmd    `cmd:"" help:"Open a note in the editor"`
	List    ListCmd    `cmd:"" help:"List notes"`
	Show    ShowCmd    `cmd:"" help:"Print a note"`
	Diff    DiffCmd    `cmd:"" help:"Diff two revisions of a note"`
	Rename  RenameCmd  `cmd:"" help:"Rename a note"`
	Rm      RmCmd      `cmd:"" help:"Delete a note and its revisions"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(g *Globals) error {
	fmt.Println("richnote", richtext.VersionTag())
	return nil
}

func (g *Globals) setup() error {
	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(g.LogFormat)
	if err != nil {
		return err
	}

	var w io.Writer = io.Discard
	if g.LogFile != "" {
		f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w, g.closer = f, f
	}
	g.log = logging.InitLogger(w, level, format)
	return nil
}

func (g *Globals) dbPath() (string, error) {
	if g.DB != "" {
		return g.DB, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	dir = filepath.Join(dir, "richnote")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return filepath.Join(dir, "notes.db"), nil
}

func (g *Globals) openStore(ctx context.Context) (*notes.Store, error) {
	path, err := g.dbPath()
	if err != nil {
		return nil, err
	}
	return notes.Open(ctx, path, g.log)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("richnote"),
		kong.Description("Styled notes with list and blockquote continuation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err := CLI.Globals.setup(); err != nil {
		ctx.FatalIfErrorf(err)
	}
	err := ctx.Run(&CLI.Globals)
	if CLI.Globals.closer != nil {
		_ = CLI.Globals.closer.Close()
	}
	ctx.FatalIfErrorf(err)
}
