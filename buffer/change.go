package buffer

// ChangeKind identifies what a change touched.
type ChangeKind uint8

const (
	// ChangeText is an insert, delete or replace of text.
	ChangeText ChangeKind = iota
	// ChangeAttributes restyled a range without touching its text.
	ChangeAttributes
)

func (k ChangeKind) String() string {
	if k == ChangeAttributes {
		return "attributes"
	}
	return "text"
}

// AppliedEdit describes one effective edit in a change.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	Kind          ChangeKind
	VersionBefore uint64
	VersionAfter  uint64
	AppliedEdits  []AppliedEdit
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return cloneChange(b.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.AppliedEdits = append([]AppliedEdit(nil), in.AppliedEdits...)
	return out
}

func (b *Buffer) commitChange(versionBefore uint64, kind ChangeKind, edits ...AppliedEdit) {
	if b.version == versionBefore {
		return
	}
	b.lastChange = Change{
		Kind:          kind,
		VersionBefore: versionBefore,
		VersionAfter:  b.version,
		AppliedEdits:  append([]AppliedEdit(nil), edits...),
	}
	b.hasLastChange = true
}
