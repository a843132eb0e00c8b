// Package editor provides a Bubble Tea component that edits a styled-text
// session.
//
// Every key that changes text goes through session.Session, so list and
// blockquote continuation behave exactly as they do for any other host. On
// top of that the component renders runs through lipgloss and reports every
// change to the host.
package editor
