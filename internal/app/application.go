package app

import (
	"context"
	"fmt"

	"marine-guardian/internal/config"
	"marine-guardian/internal/controllers"
	"marine-guardian/internal/gui"
	"marine-guardian/internal/logger"
	"marine-guardian/internal/services"
	"marine-guardian/internal/store"
	"marine-guardian/internal/timing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
)

const (
	AppName    = "MarineGuardian: Biodiversity Tracker"
	AppID      = "org.marineguardian.tracker"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	controller *controllers.MainController
	store      *store.Store
	logger     logger.Logger
	lifecycle  *Lifecycle
}

// NewApplication opens the database at cfg.Database.Path and builds the window
func NewApplication(ctx context.Context, cfg *config.Config, log logger.Logger) (*Application, error) {
	return NewApplicationWithApp(ctx, app.NewWithID(AppID), cfg, log)
}

// NewApplicationWithApp builds the application on an existing fyne.App
func NewApplicationWithApp(ctx context.Context, fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NopLogger{}
	}

	// store timings are only ever reported in debug logs
	timings := timing.NewTracker()
	level, _ := logger.ParseLevel(cfg.Log.Level)
	timings.SetEnabled(level <= zerolog.DebugLevel)
	st, err := store.Open(ctx, cfg.Database.Path, store.WithLogger(log), store.WithTracker(timings))
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetFixedSize(false)
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"database":      st.Path(),
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
	})

	service := services.NewSightingService(st, log)
	controller := controllers.NewMainController(ctx, service, log, cfg.SortKey())

	guiManager := gui.NewManager(window, log)
	guiManager.SetDatabasePath(st.Path())
	guiManager.SetSortKey(controller.SortKey())
	controller.SetView(guiManager)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		controller: controller,
		store:      st,
		logger:     log,
		lifecycle:  NewLifecycle(fyneApp, guiManager, timings, log),
	}

	handlers := application.setupHandlers()
	application.setupMenus(handlers)

	window.SetContent(guiManager.GetMainContainer())
	controller.Refresh()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() *Handlers {
	handlers := NewHandlers(a.controller)

	a.guiManager.SetAddHandler(handlers.HandleAdd)
	a.guiManager.SetUpdateHandler(handlers.HandleUpdate)
	a.guiManager.SetDeleteHandler(handlers.HandleDelete)
	a.guiManager.SetClearHandler(handlers.HandleClear)
	a.guiManager.SetSelectHandler(handlers.HandleSelect)
	a.guiManager.SetSortHandler(handlers.HandleSort)

	return handlers
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) Manager() *gui.Manager {
	return a.guiManager
}

func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

// Lifecycle is registered with the shutdown manager by the caller
func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}

// Run shows the window and blocks until the app quits
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}
