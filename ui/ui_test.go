package ui

import (
	"testing"

	"PomoTimer/control"
	"PomoTimer/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApp struct {
	commands []control.Command
	dialogs  []string
	runes    []rune
}

func (f *fakeApp) EnqueueCommand(cmd control.Command) { f.commands = append(f.commands, cmd) }
func (f *fakeApp) HandleKeyRune(r rune)               { f.runes = append(f.runes, r) }
func (f *fakeApp) ShowInfoDialog(title string, _ fyne.Size) {
	f.dialogs = append(f.dialogs, title)
}

func newTestView(t *testing.T) (*View, *fakeApp) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	fa := &fakeApp{}
	return NewView(fa), fa
}

func TestViewButtonsPostCommands(t *testing.T) {
	v, fa := newTestView(t)

	test.Tap(v.Session.Decrement)
	test.Tap(v.Session.Increment)
	test.Tap(v.Break.Decrement)
	test.Tap(v.Break.Increment)
	test.Tap(v.Countdown.StartStop)
	test.Tap(v.Reset)

	require.Len(t, fa.commands, 6)
	assert.Equal(t, control.Adjust(timer.PhaseSession, -1), fa.commands[0])
	assert.Equal(t, control.Adjust(timer.PhaseSession, 1), fa.commands[1])
	assert.Equal(t, control.Adjust(timer.PhaseBreak, -1), fa.commands[2])
	assert.Equal(t, control.Adjust(timer.PhaseBreak, 1), fa.commands[3])
	assert.Equal(t, control.CmdToggle, fa.commands[4].Type)
	assert.Equal(t, control.CmdReset, fa.commands[5].Type)
}

func TestViewUpdateRendersSnapshot(t *testing.T) {
	v, _ := newTestView(t)

	v.Update(timer.Snapshot{
		Phase:         timer.PhaseBreak,
		State:         timer.StateRunning,
		TimeLeft:      241,
		SessionLength: 3600,
		BreakLength:   300,
	})

	assert.Equal(t, "04:01", v.Countdown.TimeText())
	assert.Equal(t, "Break", v.Countdown.PhaseText())
	assert.Equal(t, "60", v.Session.Value())
	assert.Equal(t, "5", v.Break.Value())
	assert.Equal(t, theme.MediaPauseIcon().Name(), v.Countdown.StartStop.Icon.Name())

	v.Update(timer.Snapshot{Phase: timer.PhaseSession, TimeLeft: 1500, SessionLength: 1500, BreakLength: 300})
	assert.Equal(t, "25:00", v.Countdown.TimeText())
	assert.Equal(t, "Session", v.Countdown.PhaseText())
	assert.Equal(t, theme.MediaPlayIcon().Name(), v.Countdown.StartStop.Icon.Name())
}

func TestMainWindowForwardsRunes(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	fa := &fakeApp{}
	v := NewView(fa)

	w := CreateMainWindow(fa, a, v)
	defer w.Close()
	test.TypeOnCanvas(w.Canvas(), " r")

	assert.Equal(t, []rune{' ', 'r'}, fa.runes)
}

func TestHelpOpensDialog(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	fa := &fakeApp{}
	help := NewTappableContainer(widget.NewLabel("?"), func() { fa.ShowInfoDialog("About", fyne.NewSize(1, 1)) })

	test.Tap(help)
	assert.Equal(t, []string{"About"}, fa.dialogs)
}

func TestPhaseThemeAccent(t *testing.T) {
	th := NewPhaseTheme(timer.PhaseBreak)
	assert.Equal(t, timer.BreakColor, th.Color(theme.ColorNamePrimary, theme.VariantDark))
	assert.Equal(t, theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark),
		th.Color(theme.ColorNameBackground, theme.VariantDark))
}
