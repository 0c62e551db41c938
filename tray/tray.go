// Package tray mirrors the countdown in the desktop system tray.
package tray

import (
	"fmt"

	"PomoTimer/i18n"
	"PomoTimer/timer"

	"fyne.io/fyne/v2"
)

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggle func()
	OnReset  func()
	OnShow   func()
	OnQuit   func()
}

// Manager handles system tray state.
type Manager struct {
	host       MenuHost
	callbacks  Callbacks
	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	lastStatus string
	running    bool
}

// New creates a tray manager and installs its menu on host.
func New(host MenuHost, callbacks Callbacks) *Manager {
	manager := &Manager{host: host, callbacks: callbacks}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem(i18n.T("Start"), func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})
	reset := fyne.NewMenuItem(i18n.T("Reset"), func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})
	show := fyne.NewMenuItem(i18n.T("Show"), func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})
	quit := fyne.NewMenuItem(i18n.T("Quit"), func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	manager.menu = fyne.NewMenu("PomoTimer", manager.statusItem, manager.toggleItem, reset, fyne.NewMenuItemSeparator(), show, quit)
	manager.Update(timer.Snapshot{Phase: timer.PhaseSession, TimeLeft: timer.DefaultSessionLength})
	return manager
}

// Update refreshes the status and start/stop labels from s.
func (manager *Manager) Update(s timer.Snapshot) {
	status := StatusLine(s)
	if status == manager.lastStatus && s.Running() == manager.running {
		return
	}
	manager.lastStatus = status
	manager.running = s.Running()

	manager.statusItem.Label = status
	if s.Running() {
		manager.toggleItem.Label = i18n.T("Stop")
	} else {
		manager.toggleItem.Label = i18n.T("Start")
	}
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(manager.menu)
	}
}

// StatusLine renders e.g. "Session 24:59".
func StatusLine(s timer.Snapshot) string {
	return fmt.Sprintf("%s %s", i18n.T(s.Phase.String()), timer.FormatTime(s.TimeLeft))
}
