package editor

import (
	"log/slog"

	"github.com/iw2rmb/richtext/buffer"
	"github.com/iw2rmb/richtext/style"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer. Ignored when Buffer is set.
	Text string
	// Buffer, when non-nil, is edited in place.
	Buffer *buffer.Buffer
	// Typing is the initial typing attributes; Text starts with them too.
	Typing style.Attributes

	// Rendering options.
	ShowLineNums bool
	TabWidth     int // default 4
	Style        Style

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap    KeyMap
	Clipboard Clipboard
	ReadOnly  bool

	// OnChange fires after any change to the buffer or the cursor. No-ops
	// are skipped.
	OnChange func(ChangeEvent)

	Logger *slog.Logger
}

func (c Config) normalized() Config {
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}
