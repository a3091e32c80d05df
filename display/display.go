// Package display holds the text shown in the calculator field.
package display

// Buffer is the contents of the display field. The zero value is an empty
// display. Buffer is a value: mutations return the new state.
type Buffer struct {
	text string
}

// New returns a buffer holding text.
func New(text string) Buffer {
	return Buffer{text: text}
}

// Append adds token to the end of the text. Nothing is validated, so repeated
// operators or decimal points are kept as typed.
func (b Buffer) Append(token string) Buffer {
	return Buffer{text: b.text + token}
}

// Replace overwrites the whole text, e.g. with a result or "Error".
func (b Buffer) Replace(text string) Buffer {
	return Buffer{text: text}
}

func (b Buffer) Text() string {
	return b.text
}

func (b Buffer) String() string {
	return b.text
}
