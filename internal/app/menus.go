package app

import (
	"fyne.io/fyne/v2"
)

func (a *Application) setupMenus(handlers *Handlers) {
	quit := fyne.NewMenuItem("Quit", func() {
		a.lifecycle.Shutdown()
		a.fyneApp.Quit()
	})
	quit.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Refresh", handlers.HandleRefresh),
		fyne.NewMenuItemSeparator(),
		quit,
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Statistics", func() {
			handlers.HandleRefresh()
			a.guiManager.ShowStatisticsTab()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu))
}
