// Package main contains the application wiring and the AppManager which
// coordinates the timer controller, audio and the UI.
//
// Maintenance notes / tips:
//   - Concurrency model: UI callbacks never touch the controller directly.
//     They post control.Command values to `cmdCh`, and a single command-loop
//     goroutine (see `commandLoop`) applies them in order. The controller's
//     own tick goroutine is the only other writer and the controller
//     serializes the two with its mutex.
//   - `cmdCh` is buffered. EnqueueCommand waits up to 150ms for space and
//     then drops the command so a wedged loop cannot freeze the UI.
//   - Rendering is event driven: `pumpEvents` forwards controller events to
//     the fyne main thread with fyne.Do. Nothing else refreshes the view.
package main

import (
	"context"
	"embed"
	"fmt"
	"log"
	"time"

	"PomoTimer/control"
	"PomoTimer/i18n"
	"PomoTimer/timer"
	"PomoTimer/tray"
	"PomoTimer/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"gopkg.in/yaml.v3"
)

// AppManager is the main application struct, holding all state.
type AppManager struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	view       *ui.View
	tray       *tray.Manager
	lastPhase  timer.Phase

	controller *timer.Controller
	cmdCh      chan control.Command
	cmdCtx     context.Context
	cmdCancel  context.CancelFunc

	content embed.FS // Embedded file system for assets
}

// NewAppManager creates a new application manager and starts its command
// loop.
func NewAppManager(fyneApp fyne.App, controller *timer.Controller, content embed.FS) *AppManager {
	a := &AppManager{
		fyneApp:    fyneApp,
		controller: controller,
		content:    content,
		lastPhase:  timer.PhaseSession,
	}

	a.cmdCh = make(chan control.Command, 64)
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	go a.commandLoop()

	return a
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	select {
	case a.cmdCh <- cmd:
	case <-time.After(150 * time.Millisecond):
		log.Printf("EnqueueCommand timeout: dropping %s command", cmd.Type)
	}
}

func (a *AppManager) commandLoop() {
	for {
		select {
		case <-a.cmdCtx.Done():
			return
		case cmd := <-a.cmdCh:
			cmd.Apply(a.controller)
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- nil:
				default:
				}
			}
		}
	}
}

// Snapshot returns the controller state.
func (a *AppManager) Snapshot() timer.Snapshot {
	return a.controller.Snapshot()
}

func (a *AppManager) pumpEvents(ctx context.Context, events <-chan timer.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Type == timer.EventPhaseComplete {
				log.Printf("Phase complete, now %s (%s)", ev.Snapshot.Phase, timer.FormatTime(ev.Snapshot.TimeLeft))
			}
			a.render(ev.Snapshot)
		}
	}
}

func (a *AppManager) render(s timer.Snapshot) {
	fyne.Do(func() {
		if a.view != nil {
			a.view.Update(s)
		}
		if a.tray != nil {
			a.tray.Update(s)
		}
		if s.Phase != a.lastPhase {
			a.lastPhase = s.Phase
			if a.fyneApp != nil {
				a.fyneApp.Settings().SetTheme(ui.NewPhaseTheme(s.Phase))
			}
		}
	})
}

// HandleKeyRune maps keyboard shortcuts to commands.
func (a *AppManager) HandleKeyRune(r rune) {
	switch r {
	case ' ':
		a.EnqueueCommand(control.Command{Type: control.CmdToggle})
	case 'r', 'R':
		a.EnqueueCommand(control.Command{Type: control.CmdReset})
	case '+', '=':
		a.EnqueueCommand(control.Adjust(timer.PhaseSession, 1))
	case '-', '_':
		a.EnqueueCommand(control.Adjust(timer.PhaseSession, -1))
	case ']':
		a.EnqueueCommand(control.Adjust(timer.PhaseBreak, 1))
	case '[':
		a.EnqueueCommand(control.Adjust(timer.PhaseBreak, -1))
	}
}

// aboutText returns the about dialogue for lang, falling back to english.
func (a *AppManager) aboutText(lang string) (string, error) {
	bytes, err := a.content.ReadFile("assets/dialogue_about.yaml")
	if err != nil {
		return "", fmt.Errorf("read about dialogue: %w", err)
	}

	var dialogues map[string]string
	if err := yaml.Unmarshal(bytes, &dialogues); err != nil {
		return "", fmt.Errorf("parse about dialogue: %w", err)
	}
	if text, ok := dialogues[lang]; ok {
		return text, nil
	}
	return dialogues["en"], nil
}

// ShowInfoDialog shows the about dialog in the current language.
func (a *AppManager) ShowInfoDialog(title string, minSize fyne.Size) {
	if a.mainWindow == nil {
		return
	}
	contentText, err := a.aboutText(i18n.GetLang())
	if err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}

	text := widget.NewLabel(contentText)
	text.Wrapping = fyne.TextWrapWord

	scrollableContent := container.NewVScroll(text)
	scrollableContent.SetMinSize(minSize)

	dialog.ShowCustom(title, i18n.T("Close"), scrollableContent, a.mainWindow)
}

// Shutdown stops the command loop and releases the controller's tick.
func (a *AppManager) Shutdown() {
	if a.cmdCancel != nil {
		a.cmdCancel()
	}
	a.controller.Close()
}
