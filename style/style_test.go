package style

import "testing"

func TestMerge_OverlayWinsExceptFormatsUnion(t *testing.T) {
	base := Attributes{Header: H2, Formats: Bold, Blockquote: false}
	overlay := Attributes{Header: H4, Formats: Italic | Underline, Blockquote: true}

	got := Merge(base, overlay)
	want := Attributes{Header: H4, Formats: Bold | Italic | Underline, Blockquote: true}
	if got != want {
		t.Fatalf("merge=%v, want %v", got, want)
	}

	// An unset overlay keeps the base header.
	got = Merge(base, Attributes{Formats: Strikethrough})
	want = Attributes{Header: H2, Formats: Bold | Strikethrough}
	if got != want {
		t.Fatalf("merge=%v, want %v", got, want)
	}
}

func TestMerge_OverlayClearsBlockquote(t *testing.T) {
	got := Merge(Attributes{Header: H2, Blockquote: true}, Attributes{})
	want := Attributes{Header: H2}
	if got != want {
		t.Fatalf("merge=%v, want %v", got, want)
	}
}

func TestAttributes_Equality(t *testing.T) {
	a := Attributes{Header: H1, Formats: Bold | Italic}
	b := Attributes{}.WithHeader(H1).WithFormat(Italic, true).WithFormat(Bold, true)
	if a != b {
		t.Fatalf("expected %v == %v", a, b)
	}
	if a == b.WithBlockquote(true) {
		t.Fatalf("expected blockquote to break equality")
	}
}

func TestAttributes_Toggles(t *testing.T) {
	a := Attributes{}
	a = a.ToggleHeader(H3)
	if a.Header != H3 {
		t.Fatalf("header=%v, want H3", a.Header)
	}
	a = a.ToggleHeader(H5)
	if a.Header != H5 {
		t.Fatalf("header=%v, want H5", a.Header)
	}
	a = a.ToggleHeader(H5)
	if a.Header != HeaderNone {
		t.Fatalf("header=%v, want none", a.Header)
	}

	a = a.ToggleFormat(Bold).ToggleFormat(Underline)
	if !a.Has(Bold) || !a.Has(Underline) || a.Has(Italic) {
		t.Fatalf("formats=%v, want B|U", a.Formats)
	}
	a = a.ToggleFormat(Bold)
	if a.Has(Bold) {
		t.Fatalf("expected bold cleared, got %v", a.Formats)
	}

	if !a.ToggleBlockquote().Blockquote {
		t.Fatalf("expected blockquote on")
	}
}

func TestResolveFont_Order(t *testing.T) {
	cases := []struct {
		name  string
		attrs Attributes
		size  float64
		wt    Weight
		quote bool
	}{
		{name: "plain", attrs: Attributes{}, size: BodySize, wt: WeightRegular},
		{name: "h1", attrs: Attributes{Header: H1}, size: 32, wt: WeightBold},
		{name: "h3 italic", attrs: Attributes{Header: H3, Formats: Italic}, size: 24, wt: WeightSemibold},
		{name: "h6 quote", attrs: Attributes{Header: H6, Blockquote: true}, size: 16, wt: WeightMedium, quote: true},
		{name: "bold body", attrs: Attributes{Formats: Bold}, size: BodySize, wt: WeightRegular},
	}

	for _, tc := range cases {
		f := ResolveFont(tc.attrs)
		if f.Size != tc.size {
			t.Fatalf("%s: size=%v, want %v", tc.name, f.Size, tc.size)
		}
		if f.Weight != tc.wt {
			t.Fatalf("%s: weight=%v, want %v", tc.name, f.Weight, tc.wt)
		}
		if (f.Paragraph != nil) != tc.quote {
			t.Fatalf("%s: paragraph=%v, want quote=%v", tc.name, f.Paragraph, tc.quote)
		}
		if f.Bold != tc.attrs.Has(Bold) || f.Italic != tc.attrs.Has(Italic) {
			t.Fatalf("%s: traits bold=%v italic=%v", tc.name, f.Bold, f.Italic)
		}
	}
}

func TestResolveFont_BlockquoteParagraph(t *testing.T) {
	f := ResolveFont(Attributes{Blockquote: true, Formats: Underline})
	if f.Paragraph == nil || *f.Paragraph != BlockquoteParagraph {
		t.Fatalf("paragraph=%v, want %v", f.Paragraph, BlockquoteParagraph)
	}
	if f.Foreground != ColorDarkGray || f.Background != ColorLightGray {
		t.Fatalf("colors=%q/%q", f.Foreground, f.Background)
	}
	if !f.Underline {
		t.Fatalf("expected underline on top of blockquote")
	}
}

func TestNamesRoundTrip(t *testing.T) {
	for _, h := range HeaderLevels {
		got, err := ParseHeaderLevel(h.String())
		if err != nil || got != h {
			t.Fatalf("ParseHeaderLevel(%q)=%v,%v", h.String(), got, err)
		}
	}
	if _, err := ParseHeaderLevel("H7"); err == nil {
		t.Fatalf("expected error for H7")
	}

	flags := Bold | Strikethrough
	names := flags.Names()
	if len(names) != 2 || names[0] != "B" || names[1] != "S" {
		t.Fatalf("names=%v, want [B S]", names)
	}
	var back FormatFlag
	for _, n := range names {
		f, err := ParseFormatFlag(n)
		if err != nil {
			t.Fatalf("ParseFormatFlag(%q): %v", n, err)
		}
		back |= f
	}
	if back != flags {
		t.Fatalf("flags=%v, want %v", back, flags)
	}
	if got := FormatFlag(0).Names(); got == nil || len(got) != 0 {
		t.Fatalf("empty names=%#v, want empty non-nil slice", got)
	}
}
