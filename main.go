package main

import (
	"context"
	"embed"
	"errors"
	"log"

	"PomoTimer/audio"
	"PomoTimer/config"
	"PomoTimer/control"
	"PomoTimer/i18n"
	"PomoTimer/platform"
	"PomoTimer/timer"
	"PomoTimer/tray"
	"PomoTimer/ui"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

//go:embed assets/*
var content embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	i18n.Init(cfg.UI.Language)

	guard, err := platform.AcquireSingleInstance(config.AppName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("Another timer is already open: %v", err)
			return
		}
		log.Fatalf("single instance: %v", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	var alert timer.Alerter
	player, err := audio.NewPlayer(audio.Options{
		File:         cfg.Alert.File,
		Volume:       cfg.Alert.Volume,
		ToneHz:       cfg.Alert.ToneHz,
		ToneDuration: cfg.Alert.ToneDuration(),
	})
	if err != nil {
		log.Printf("Alert disabled: %v", err)
	} else {
		alert = player
	}

	controller := timer.NewController(alert, timer.Options{TickInterval: cfg.Tick.Interval})

	fyneApp := app.NewWithID("io.pomotimer.app")
	fyneApp.Settings().SetTheme(ui.NewPhaseTheme(timer.PhaseSession))

	a := NewAppManager(fyneApp, controller, content)
	defer a.Shutdown()

	a.view = ui.NewView(a)
	w := ui.CreateMainWindow(a, fyneApp, a.view)
	a.mainWindow = w

	if desk, ok := fyneApp.(desktop.App); ok && cfg.UI.Tray {
		a.tray = tray.New(desk, tray.Callbacks{
			OnToggle: func() { a.EnqueueCommand(control.Command{Type: control.CmdToggle}) },
			OnReset:  func() { a.EnqueueCommand(control.Command{Type: control.CmdReset}) },
			OnShow:   w.Show,
			OnQuit:   fyneApp.Quit,
		})
		w.SetCloseIntercept(w.Hide)
	} else {
		w.SetMaster()
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.SetOnClosed(func() {
		cancel()
	})

	events := controller.Subscribe(32)
	go a.pumpEvents(ctx, events)

	s := controller.Snapshot()
	a.view.Update(s)
	if a.tray != nil {
		a.tray.Update(s)
	}

	w.ShowAndRun()
	cancel()
}
