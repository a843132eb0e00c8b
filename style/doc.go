// Package style describes the formatting that applies at a point or over a
// range of an attributed buffer.
//
// Attributes is a small comparable value: at most one header level, a set of
// inline format flags and a blockquote marker. Presentation details (font
// size, weight, paragraph indents, colours) are derived from it by
// ResolveFont and are never stored.
package style
