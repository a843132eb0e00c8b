// Package engine decides how a pending edit is applied to an attributed
// buffer so that list and blockquote lines continue, split or end the way a
// user expects when they press Enter or Backspace.
//
// Decide is a pure function of (State, buffer, PendingEdit). It never mutates
// the buffer. The caller applies the returned Outcome and keeps the returned
// State for the next edit.
//
// Enter (a replacement of exactly "\n"):
//   - list item, cursor at the end of the content: a new item is inserted,
//     numbered n+1 for ordered lists or with the same bullet;
//   - list item, cursor inside the content: the line is split and the
//     remainder moves to a new item carrying the same number or bullet;
//   - empty list item, cursor at the content start: the list ends and only
//     "\n" plus the indent is inserted;
//   - blockquote: the same split/continue/exit rules with the "> " prefix,
//     copying the first character's attributes to the new line;
//   - anything else: the default edit, with the cursor pinned after the
//     newline.
//
// Backspace (an empty replacement over one rune or one grapheme cluster) always
// takes the default path for the deletion itself. The engine only chooses
// where the cursor goes and tracks whether the user just emptied a line.
package engine
