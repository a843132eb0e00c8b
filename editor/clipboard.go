package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors never crash the UI; they are logged and the operation is dropped.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
