// Package buffer implements the attributed text buffer: a rune sequence
// partitioned into style runs.
//
// Offsets are 0-based rune offsets. Ranges are half-open: [Start, End).
// After every mutation the runs cover [0, Len()) exactly, in order, without
// gaps or overlaps, and no two neighbouring runs carry equal attributes.
package buffer
