package gui

import (
	"strconv"

	"marine-guardian/internal/controllers"
	"marine-guardian/internal/gui/components"
	"marine-guardian/internal/logger"
	"marine-guardian/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

const (
	TabRecords    = "Records"
	TabStatistics = "Statistics"
)

// Manager owns the window content and implements controllers.View
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	form      *components.SightingForm
	table     *components.SightingTable
	chart     *components.StatusChart
	statusBar *components.StatusBar
	tabs      *container.AppTabs

	addHandler    func(models.SightingInput)
	updateHandler func(controllers.Selection, models.SightingInput)
	deleteHandler func(controllers.Selection)
	clearHandler  func()
	selectHandler func(controllers.Selection)
	sortHandler   func(models.SortKey)
}

func NewManager(window fyne.Window, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NopLogger{}
	}

	manager := &Manager{
		window:    window,
		logger:    log,
		form:      components.NewSightingForm(),
		table:     components.NewSightingTable(),
		chart:     components.NewStatusChart(),
		statusBar: components.NewStatusBar(),
	}

	manager.wireComponents()

	log.Debug("GUIManager", "initialized", nil)
	return manager
}

func (m *Manager) wireComponents() {
	m.form.SetAddHandler(func() {
		if m.addHandler != nil {
			m.addHandler(m.form.Input())
		}
	})
	m.form.SetUpdateHandler(func() {
		if m.updateHandler != nil {
			m.updateHandler(m.Selection(), m.form.Input())
		}
	})
	m.form.SetDeleteHandler(func() {
		if m.deleteHandler != nil {
			m.deleteHandler(m.Selection())
		}
	})
	m.form.SetClearHandler(func() {
		if m.clearHandler != nil {
			m.clearHandler()
		}
	})

	m.table.SetSelectHandler(func(s models.Sighting) {
		m.logger.Debug("GUIManager", "row selected", map[string]interface{}{
			"id": s.ID,
		})
		if m.selectHandler != nil {
			m.selectHandler(controllers.Select(s.ID))
		}
	})
	m.table.SetSortHandler(func(key models.SortKey) {
		if m.sortHandler != nil {
			m.sortHandler(key)
		}
	})
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	records := container.NewBorder(m.form.GetContainer(), nil, nil, nil, m.table.GetContainer())

	m.tabs = container.NewAppTabs(
		container.NewTabItem(TabRecords, records),
		container.NewTabItem(TabStatistics, container.NewPadded(m.chart.GetContainer())),
	)

	return container.NewBorder(
		components.NewHeader(),
		m.statusBar.GetContainer(),
		nil, nil,
		m.tabs,
	)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

// Selection returns the row currently highlighted in the table
func (m *Manager) Selection() controllers.Selection {
	if s, ok := m.table.Selected(); ok {
		return controllers.Select(s.ID)
	}
	return controllers.NoSelection
}

// ShowStatisticsTab switches to the chart
func (m *Manager) ShowStatisticsTab() {
	if m.tabs != nil {
		m.tabs.SelectIndex(1)
	}
}

// SetSortKey reflects the active ordering in the sort selector
func (m *Manager) SetSortKey(key models.SortKey) {
	m.table.SetSortKey(key)
}

func (m *Manager) SetDatabasePath(path string) {
	m.statusBar.SetDatabasePath(path)
}

func (m *Manager) SetAddHandler(handler func(models.SightingInput)) {
	m.addHandler = handler
}

func (m *Manager) SetUpdateHandler(handler func(controllers.Selection, models.SightingInput)) {
	m.updateHandler = handler
}

func (m *Manager) SetDeleteHandler(handler func(controllers.Selection)) {
	m.deleteHandler = handler
}

func (m *Manager) SetClearHandler(handler func()) {
	m.clearHandler = handler
}

func (m *Manager) SetSelectHandler(handler func(controllers.Selection)) {
	m.selectHandler = handler
}

func (m *Manager) SetSortHandler(handler func(models.SortKey)) {
	m.sortHandler = handler
}

func (m *Manager) ShowSightings(sightings []models.Sighting) {
	m.table.SetSightings(sightings)
	m.statusBar.SetStatus("Loaded " + pluralRecords(len(sightings)))
}

// Sightings returns the rows currently shown in the table
func (m *Manager) Sightings() []models.Sighting {
	return m.table.Sightings()
}

// Counts returns the data currently drawn in the chart
func (m *Manager) Counts() []models.StatusCount {
	return m.chart.Counts()
}

func (m *Manager) ShowStatistics(counts []models.StatusCount) {
	m.chart.Update(counts)
}

func (m *Manager) FillForm(s models.Sighting) {
	m.form.Fill(s)
}

// ClearForm empties the fields and drops the table selection
func (m *Manager) ClearForm() {
	m.form.Clear()
	m.table.ClearSelection()
}

func (m *Manager) ShowInfo(title, message string) {
	m.statusBar.SetStatus(message)
	dialog.ShowInformation(title, message, m.window)
}

func (m *Manager) ShowWarning(title, message string) {
	m.logger.Warning("GUIManager", message, map[string]interface{}{
		"title": title,
	})
	dialog.ShowInformation(title, message, m.window)
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})
	m.statusBar.SetStatus(title)
	dialog.ShowError(err, m.window)
}

func (m *Manager) Confirm(title, message string, onConfirm func()) {
	dialog.ShowConfirm(title, message, func(ok bool) {
		if ok {
			onConfirm()
		}
	}, m.window)
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}

func pluralRecords(n int) string {
	if n == 1 {
		return "1 record"
	}
	return strconv.Itoa(n) + " records"
}
