package ui

import (
	"image/color"

	"PomoTimer/control"
	"PomoTimer/i18n"
	"PomoTimer/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type App interface {
	EnqueueCommand(cmd control.Command)
	HandleKeyRune(rune)
	ShowInfoDialog(title string, minSize fyne.Size)
}

// LengthPicker shows one configured length in minutes with -/+ buttons.
// It holds no state of its own; Update copies the value from a snapshot.
type LengthPicker struct {
	phase     timer.Phase
	titleText *canvas.Text
	valueText *canvas.Text
	Decrement *widget.Button
	Increment *widget.Button
	content   *fyne.Container
}

func NewLengthPicker(p timer.Phase, onDecrement, onIncrement func()) *LengthPicker {
	lp := &LengthPicker{phase: p}

	lp.titleText = canvas.NewText(i18n.T(p.String()), color.White)
	lp.titleText.TextSize = timer.FontSizeLabel
	lp.titleText.Alignment = fyne.TextAlignCenter

	lp.valueText = canvas.NewText("--", color.White)
	lp.valueText.TextSize = timer.FontSizeValue
	lp.valueText.TextStyle.Bold = true
	lp.valueText.Alignment = fyne.TextAlignCenter

	lp.Decrement = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), onDecrement)
	lp.Increment = widget.NewButtonWithIcon("", theme.ContentAddIcon(), onIncrement)

	lp.content = container.NewVBox(
		container.NewCenter(lp.titleText),
		container.NewHBox(layout.NewSpacer(), lp.Decrement, lp.valueText, lp.Increment, layout.NewSpacer()),
	)
	return lp
}

func (lp *LengthPicker) Update(s timer.Snapshot) {
	lp.titleText.Text = i18n.T(lp.phase.String())
	lp.valueText.Text = timer.FormatMinutes(s.Length(lp.phase))
	lp.titleText.Refresh()
	lp.valueText.Refresh()
}

// Value returns the text currently displayed.
func (lp *LengthPicker) Value() string {
	return lp.valueText.Text
}

func (lp *LengthPicker) GetCanvasObject() fyne.CanvasObject {
	return lp.content
}

// CountdownDisplay shows TimeLeft as mm:ss, the phase label and the
// start/stop button.
type CountdownDisplay struct {
	timeText   *canvas.Text
	phaseText  *canvas.Text
	background *canvas.Rectangle
	StartStop  *widget.Button
	content    fyne.CanvasObject
}

func NewCountdownDisplay(onToggle func()) *CountdownDisplay {
	d := &CountdownDisplay{}

	d.timeText = canvas.NewText("--:--", color.White)
	d.timeText.TextSize = timer.FontSizeTime
	d.timeText.TextStyle.Monospace = true
	d.timeText.Alignment = fyne.TextAlignCenter

	d.phaseText = canvas.NewText("", color.White)
	d.phaseText.TextSize = timer.FontSizeLabel
	d.phaseText.Alignment = fyne.TextAlignCenter

	d.background = canvas.NewRectangle(color.Transparent)
	d.background.CornerRadius = 10

	d.StartStop = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), onToggle)
	d.StartStop.Importance = widget.HighImportance

	d.content = container.NewStack(d.background, container.NewVBox(
		container.NewCenter(d.timeText),
		container.NewCenter(d.phaseText),
		container.NewCenter(d.StartStop),
	))
	return d
}

func (d *CountdownDisplay) Update(s timer.Snapshot) {
	d.timeText.Text = timer.FormatTime(s.TimeLeft)
	d.phaseText.Text = i18n.T(s.Phase.String())

	var opacity = 0.35
	if s.Running() {
		d.StartStop.SetIcon(theme.MediaPauseIcon())
		opacity = 0.65
	} else {
		d.StartStop.SetIcon(theme.MediaPlayIcon())
	}
	d.background.FillColor = withAlpha(timer.PhaseColor(s.Phase), uint8(opacity*255))

	d.timeText.Refresh()
	d.phaseText.Refresh()
	d.background.Refresh()
}

// TimeText returns the formatted countdown currently displayed.
func (d *CountdownDisplay) TimeText() string {
	return d.timeText.Text
}

// PhaseText returns the phase label currently displayed.
func (d *CountdownDisplay) PhaseText() string {
	return d.phaseText.Text
}

func (d *CountdownDisplay) GetCanvasObject() fyne.CanvasObject {
	return d.content
}

// View is the whole window body. Every callback posts a command; nothing
// here mutates timer state directly.
type View struct {
	Session   *LengthPicker
	Break     *LengthPicker
	Countdown *CountdownDisplay
	Reset     *widget.Button
	Content   fyne.CanvasObject
}

func NewView(a App) *View {
	post := func(cmd control.Command) func() {
		return func() { a.EnqueueCommand(cmd) }
	}

	v := &View{
		Session: NewLengthPicker(timer.PhaseSession,
			post(control.Adjust(timer.PhaseSession, -1)),
			post(control.Adjust(timer.PhaseSession, 1))),
		Break: NewLengthPicker(timer.PhaseBreak,
			post(control.Adjust(timer.PhaseBreak, -1)),
			post(control.Adjust(timer.PhaseBreak, 1))),
		Countdown: NewCountdownDisplay(post(control.Command{Type: control.CmdToggle})),
		Reset:     widget.NewButtonWithIcon("", theme.MediaReplayIcon(), post(control.Command{Type: control.CmdReset})),
	}

	aboutIcon := widget.NewIcon(theme.QuestionIcon())
	helpButton := NewTappableContainer(aboutIcon, func() {
		a.ShowInfoDialog(i18n.T("About PomoTimer"), fyne.NewSize(320, 200))
	})

	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(timer.PickerGap, 0))

	pickers := container.NewHBox(
		layout.NewSpacer(),
		v.Break.GetCanvasObject(),
		gap,
		v.Session.GetCanvasObject(),
		layout.NewSpacer(),
	)

	footer := container.NewBorder(nil, nil, helpButton, nil,
		container.NewCenter(v.Reset))

	v.Content = container.NewVBox(
		pickers,
		layout.NewSpacer(),
		v.Countdown.GetCanvasObject(),
		layout.NewSpacer(),
		footer,
	)
	return v
}

// Update copies s into every component. Call it on the fyne main thread.
func (v *View) Update(s timer.Snapshot) {
	v.Session.Update(s)
	v.Break.Update(s)
	v.Countdown.Update(s)
}

func CreateMainWindow(a App, fyneApp fyne.App, v *View) fyne.Window {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = "PomoTimer"
	}
	w := fyneApp.NewWindow(title)

	w.Canvas().SetOnTypedRune(a.HandleKeyRune)

	w.SetContent(v.Content)
	w.Resize(fyne.NewSize(timer.WindowWidth, timer.WindowHeight))
	w.SetFixedSize(true)
	return w
}

type TappableContainer struct {
	widget.BaseWidget
	Content         fyne.CanvasObject
	OnTappedPrimary func()
}

func NewTappableContainer(c fyne.CanvasObject, onP func()) *TappableContainer {
	t := &TappableContainer{
		Content:         c,
		OnTappedPrimary: onP,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TappableContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.Content)
}

func (t *TappableContainer) Tapped(_ *fyne.PointEvent) {
	if t.OnTappedPrimary != nil {
		t.OnTappedPrimary()
	}
}

func withAlpha(c color.Color, alpha uint8) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}
