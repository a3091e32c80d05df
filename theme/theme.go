package theme

import (
	_ "embed"
)

//go:embed icon.svg
var icon []byte

// AppID identifies the application to fyne (preferences, desktop entry).
const AppID = "io.calcgui.calculator"

var AppIcon = appIcon{}

type appIcon struct{}

func (appIcon) Name() string {
	return "calcgui.svg"
}

func (appIcon) Content() []byte {
	return icon
}
