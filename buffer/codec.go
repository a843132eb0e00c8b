package buffer

import (
	"encoding/json"
	"fmt"

	"github.com/iw2rmb/richtext/style"
)

type encodedBuffer struct {
	Text string       `json:"text"`
	Runs []encodedRun `json:"runs"`
}

type encodedRun struct {
	Start        int      `json:"start"`
	End          int      `json:"end"`
	HeaderLevel  *string  `json:"headerLevel,omitempty"`
	FormatFlags  []string `json:"formatFlags"`
	IsBlockquote bool     `json:"isBlockquote"`
}

// Encode serializes b into its persisted JSON form.
func Encode(b *Buffer) ([]byte, error) {
	enc := encodedBuffer{
		Text: string(b.text),
		Runs: make([]encodedRun, 0, len(b.runs)),
	}
	for _, r := range b.runs {
		er := encodedRun{
			Start:        r.Start,
			End:          r.End,
			FormatFlags:  r.Attrs.Formats.Names(),
			IsBlockquote: r.Attrs.Blockquote,
		}
		if r.Attrs.Header != style.HeaderNone {
			h := r.Attrs.Header.String()
			er.HeaderLevel = &h
		}
		enc.Runs = append(enc.Runs, er)
	}
	data, err := json.Marshal(enc)
	if err != nil {
		return nil, fmt.Errorf("encode buffer: %w", err)
	}
	return data, nil
}

// Decode rebuilds a buffer from Encode output. Runs must partition the text;
// neighbouring runs with equal attributes are coalesced.
func Decode(data []byte) (*Buffer, error) {
	var enc encodedBuffer
	if err := json.Unmarshal(data, &enc); err != nil {
		return nil, fmt.Errorf("decode buffer: %w", err)
	}

	text := []rune(enc.Text)
	runs := make([]Run, 0, len(enc.Runs))
	next := 0
	for i, er := range enc.Runs {
		if er.Start != next || er.End < er.Start || er.End > len(text) {
			return nil, fmt.Errorf("%w: run %d [%d:%d) after offset %d, text length %d",
				ErrInvalidEncoding, i, er.Start, er.End, next, len(text))
		}
		attrs, err := decodeAttributes(er)
		if err != nil {
			return nil, fmt.Errorf("%w: run %d: %v", ErrInvalidEncoding, i, err)
		}
		runs = append(runs, Run{Start: er.Start, End: er.End, Attrs: attrs})
		next = er.End
	}
	if next != len(text) {
		return nil, fmt.Errorf("%w: runs cover %d of %d runes", ErrInvalidEncoding, next, len(text))
	}

	b := &Buffer{text: text, runs: coalesceRuns(runs)}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return b, nil
}

func decodeAttributes(er encodedRun) (style.Attributes, error) {
	attrs := style.Attributes{Blockquote: er.IsBlockquote}
	if er.HeaderLevel != nil {
		h, err := style.ParseHeaderLevel(*er.HeaderLevel)
		if err != nil {
			return style.Plain, err
		}
		attrs.Header = h
	}
	for _, name := range er.FormatFlags {
		f, err := style.ParseFormatFlag(name)
		if err != nil {
			return style.Plain, err
		}
		attrs.Formats |= f
	}
	return attrs, nil
}
