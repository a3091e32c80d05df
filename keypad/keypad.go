// Package keypad maps a button press to the next display text. It knows
// nothing about any UI toolkit.
package keypad

import (
	"log"
	"strings"

	"calcgui/display"
	"calcgui/evaluator"
)

const (
	// Equals triggers evaluation.
	Equals = "="
	// ErrorText replaces the display when evaluation fails.
	ErrorText = "Error"
)

// Layout is the button grid, row by row.
var Layout = [4][4]string{
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", ".", "=", "+"},
}

// Labels returns the button labels in grid order.
func Labels() []string {
	labels := make([]string, 0, len(Layout)*len(Layout[0]))
	for _, row := range Layout {
		labels = append(labels, row[:]...)
	}
	return labels
}

// IsKey reports whether label is one of the grid buttons.
func IsKey(label string) bool {
	for _, row := range Layout {
		for _, l := range row {
			if l == label {
				return true
			}
		}
	}
	return false
}

// Press returns the display text after label is pressed on a display showing
// text. Digits, "." and operators are appended as is. "=" replaces the text
// with the result, or with ErrorText when the expression cannot be evaluated.
// Unknown labels leave text unchanged.
func Press(mode evaluator.Mode, text, label string) string {
	return PressBuffer(mode, display.New(text), label).Text()
}

// PressBuffer is Press on a display.Buffer.
func PressBuffer(mode evaluator.Mode, buf display.Buffer, label string) display.Buffer {
	if !IsKey(label) {
		log.Printf("keypad: ignoring unknown key %q", label)
		return buf
	}
	if label != Equals {
		return buf.Append(label)
	}
	result, err := mode.Evaluate(buf.Text())
	if err != nil {
		log.Printf("keypad: %v", err)
		return buf.Replace(ErrorText)
	}
	return buf.Replace(evaluator.FormatResult(result))
}

// Grid renders Layout as text, one row per line.
func Grid() string {
	var sb strings.Builder
	for _, row := range Layout {
		sb.WriteString(strings.Join(row[:], " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
