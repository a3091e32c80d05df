package ui

import (
	"calcgui/display"
	"calcgui/evaluator"
	"calcgui/keypad"
	"calcgui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const windowTitle = "Calculator"

type (
	// Properties related to UI.
	UI struct {
		Fyne    fyne.App
		window  fyne.Window
		field   *widget.Entry
		buttons map[string]*widget.Button

		// and...
		withLogicIncluded
	}
	// Properties related to application logic.
	withLogicIncluded struct {
		mode evaluator.Mode
		buf  display.Buffer
	}

	// Config is what the command line hands to the window.
	Config struct {
		Mode evaluator.Mode
	}
)

func New(cfg Config) *UI {
	return newWithApp(app.NewWithID(theme.AppID), cfg)
}

func newWithApp(a fyne.App, cfg Config) *UI {
	a.SetIcon(theme.AppIcon)
	ui := UI{
		Fyne:              a,
		buttons:           make(map[string]*widget.Button, len(keypad.Labels())),
		withLogicIncluded: withLogicIncluded{mode: cfg.Mode},
	}
	ui.createWindow()
	return &ui
}

func (u *UI) Run() {
	u.window.ShowAndRun()
}

func (u *UI) createWindow() {
	window := u.Fyne.NewWindow(windowTitle)

	// The field stays editable; whatever is typed becomes the buffer.
	u.field = widget.NewEntry()
	u.field.OnChanged = func(text string) {
		u.buf = u.buf.Replace(text)
	}

	grid := container.NewGridWithColumns(len(keypad.Layout[0]))
	for _, label := range keypad.Labels() {
		btn := widget.NewButton(label, func() {
			u.Press(label)
		})
		u.buttons[label] = btn
		grid.Add(btn)
	}

	window.SetContent(container.NewBorder(u.field, nil, nil, nil, grid))
	window.Resize(fyne.NewSize(280, 320))

	// Close on Esc
	window.Canvas().SetOnTypedKey(func(k *fyne.KeyEvent) {
		if k.Name == fyne.KeyEscape {
			fyne.Do(window.Close)
		}
	})
	u.window = window
}

// Press applies a button label to the display as if it was tapped.
func (u *UI) Press(label string) {
	u.buf = keypad.PressBuffer(u.mode, u.buf, label)
	u.field.SetText(u.buf.Text())
}

// Text is the current display contents.
func (u *UI) Text() string {
	return u.buf.Text()
}

// Button returns the grid button for label, or nil.
func (u *UI) Button(label string) *widget.Button {
	return u.buttons[label]
}
