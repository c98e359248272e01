package app

import (
	"sync"

	"marine-guardian/internal/gui"
	"marine-guardian/internal/logger"
	"marine-guardian/internal/timing"

	"fyne.io/fyne/v2"
)

type Lifecycle struct {
	fyneApp    fyne.App
	guiManager *gui.Manager
	timings    *timing.Tracker
	logger     logger.Logger

	mu         sync.Mutex
	isShutdown bool
}

func NewLifecycle(fyneApp fyne.App, gm *gui.Manager, timings *timing.Tracker, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		fyneApp:    fyneApp,
		guiManager: gm,
		timings:    timings,
		logger:     log,
	}
}

// Shutdown stops the GUI manager once; later calls are no-ops
func (l *Lifecycle) Shutdown() {
	l.shutdown()
}

// shutdown reports whether this call performed the shutdown
func (l *Lifecycle) shutdown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.isShutdown {
		return false
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	l.logTimings()
	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	return true
}

// Quit shuts down and stops the event loop. Safe to call off the UI
// goroutine; does nothing once the window has already shut down.
func (l *Lifecycle) Quit() {
	if !l.shutdown() {
		return
	}
	if l.fyneApp != nil {
		fyne.Do(l.fyneApp.Quit)
	}
}

func (l *Lifecycle) logTimings() {
	if l.timings == nil {
		return
	}
	for _, s := range l.timings.Summaries() {
		l.logger.Debug("Lifecycle", "store operation timings", map[string]interface{}{
			"op":         s.Operation,
			"count":      s.Count,
			"average_ms": s.Average.Milliseconds(),
			"max_ms":     s.Max.Milliseconds(),
		})
	}
}

func (l *Lifecycle) IsShutdown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isShutdown
}
