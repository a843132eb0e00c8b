package richtext

import "testing"

func TestVersion_ParsesAsEmbedded(t *testing.T) {
	v, err := ParseVersion(Version())
	if err != nil {
		t.Fatalf("embedded version: %v", err)
	}
	if v.String() != Version() {
		t.Fatalf("round trip: got %q, want %q", v.String(), Version())
	}
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("tag: got %q, want %q", got, want)
	}
}

func TestParseVersion(t *testing.T) {
	cases := []struct {
		in   string
		want SemVer
		ok   bool
	}{
		{"0.1.0", SemVer{Minor: 1}, true},
		{" 1.2.3-alpha.1\n", SemVer{Major: 1, Minor: 2, Patch: 3, Pre: "alpha.1"}, true},
		{"2.0.0+build.7", SemVer{Major: 2, Build: "build.7"}, true},
		{"v1.2.3", SemVer{}, false},
		{"1.2", SemVer{}, false},
		{"01.2.3", SemVer{}, false},
	}
	for _, tc := range cases {
		got, err := ParseVersion(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseVersion(%q): err=%v, want ok=%v", tc.in, err, tc.ok)
		}
		if got != tc.want {
			t.Fatalf("ParseVersion(%q)=%+v, want %+v", tc.in, got, tc.want)
		}
	}
}
