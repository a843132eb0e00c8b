package buffer

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/iw2rmb/richtext/style"
)

func TestCodec_RoundTrip(t *testing.T) {
	b := NewText("Title\n", h1)
	_ = b.Insert(b.Len(), "> quoted", quote)
	_ = b.Insert(b.Len(), " and ", style.Plain)
	_ = b.Insert(b.Len(), "loud", bold.WithFormat(style.Underline, true))

	data, err := Encode(b)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Text() != b.Text() {
		t.Fatalf("text=%q, want %q", got.Text(), b.Text())
	}
	if !reflect.DeepEqual(got.Runs(), b.Runs()) {
		t.Fatalf("runs=%v, want %v", got.Runs(), b.Runs())
	}
}

func TestCodec_EncodeShape(t *testing.T) {
	b := NewText("ab", h1.WithFormat(style.Bold, true).WithFormat(style.Italic, true))
	data, err := Encode(b)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"text":"ab","runs":[{"start":0,"end":2,"headerLevel":"H1","formatFlags":["B","I"],"isBlockquote":false}]}`
	if string(data) != want {
		t.Fatalf("encoded=%s, want %s", data, want)
	}
}

func TestCodec_EncodeEmpty(t *testing.T) {
	data, err := Encode(New())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got, want := string(data), `{"text":"","runs":[]}`; got != want {
		t.Fatalf("encoded=%s, want %s", got, want)
	}
}

func TestCodec_DecodeCoalesces(t *testing.T) {
	data := []byte(`{"text":"abcd","runs":[
		{"start":0,"end":2,"formatFlags":["B"],"isBlockquote":false},
		{"start":2,"end":4,"formatFlags":["B"],"isBlockquote":false}]}`)
	b, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []Run{{0, 4, bold}}
	if got := b.Runs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("runs=%v, want %v", got, want)
	}
}

func TestCodec_DecodeRejectsBadPartition(t *testing.T) {
	cases := map[string]string{
		"gap":          `{"text":"abcd","runs":[{"start":0,"end":1,"formatFlags":[]},{"start":2,"end":4,"formatFlags":[]}]}`,
		"short":        `{"text":"abcd","runs":[{"start":0,"end":3,"formatFlags":[]}]}`,
		"overrun":      `{"text":"ab","runs":[{"start":0,"end":3,"formatFlags":[]}]}`,
		"header":       `{"text":"ab","runs":[{"start":0,"end":2,"headerLevel":"H9","formatFlags":[]}]}`,
		"flag":         `{"text":"ab","runs":[{"start":0,"end":2,"formatFlags":["X"]}]}`,
		"missing runs": `{"text":"ab","runs":[]}`,
	}
	for name, data := range cases {
		_, err := Decode([]byte(data))
		if !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("%s: err=%v, want ErrInvalidEncoding", name, err)
		}
	}
}

func TestCodec_DecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"text":`))
	var syntax *json.SyntaxError
	if !errors.As(err, &syntax) {
		t.Fatalf("err=%v, want *json.SyntaxError", err)
	}
}
