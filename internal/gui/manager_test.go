package gui

import (
	"errors"
	"testing"
	"time"

	"marine-guardian/internal/controllers"
	"marine-guardian/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compile-time check
var _ controllers.View = (*Manager)(nil)

func newTestManager(t *testing.T) (*Manager, fyne.Window) {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("test")
	m := NewManager(w, nil)
	w.SetContent(m.GetMainContainer())
	w.Resize(fyne.NewSize(800, 600))
	return m, w
}

var rows = []models.Sighting{
	{ID: 5, CommonName: "Manatee", LocationSighted: "Estuary", ConservationStatus: models.StatusVulnerable,
		DateRecorded: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	{ID: 4, CommonName: "Dugong", LocationSighted: "Reef A", ConservationStatus: models.StatusVulnerable,
		DateRecorded: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
}

func TestManager_SelectionFollowsTable(t *testing.T) {
	m, _ := newTestManager(t)

	var selected []controllers.Selection
	m.SetSelectHandler(func(sel controllers.Selection) { selected = append(selected, sel) })

	m.ShowSightings(rows)
	assert.False(t, m.Selection().IsSet())
	assert.Equal(t, "Loaded 2 records", m.statusBar.Status())

	m.table.SelectRow(1)
	id, ok := m.Selection().ID()
	require.True(t, ok)
	assert.EqualValues(t, 4, id)
	require.Len(t, selected, 1)
	assert.Equal(t, controllers.Select(4), selected[0])

	m.ClearForm()
	assert.False(t, m.Selection().IsSet())
}

func TestManager_ButtonsPassSelectionAndInput(t *testing.T) {
	m, _ := newTestManager(t)
	m.ShowSightings(rows)
	m.table.SelectRow(0)
	m.FillForm(rows[0])

	var gotSel controllers.Selection
	var gotIn models.SightingInput
	m.SetUpdateHandler(func(sel controllers.Selection, in models.SightingInput) {
		gotSel, gotIn = sel, in
	})
	var deleted controllers.Selection
	m.SetDeleteHandler(func(sel controllers.Selection) { deleted = sel })
	var added models.SightingInput
	m.SetAddHandler(func(in models.SightingInput) { added = in })

	m.form.Location.SetText("Estuary North")
	test.Tap(m.form.UpdateButton)
	assert.Equal(t, controllers.Select(5), gotSel)
	assert.Equal(t, "Estuary North", gotIn.Location)
	assert.Equal(t, "Manatee", gotIn.CommonName)

	test.Tap(m.form.DeleteButton)
	assert.Equal(t, controllers.Select(5), deleted)

	test.Tap(m.form.AddButton)
	assert.Equal(t, "Manatee", added.CommonName)
}

func TestManager_UpdateCarriesUnrecognisedStatus(t *testing.T) {
	m, _ := newTestManager(t)
	odd := rows[1]
	odd.ConservationStatus = "rare"
	m.ShowSightings([]models.Sighting{odd})
	m.table.SelectRow(0)
	m.FillForm(odd)

	var gotIn models.SightingInput
	m.SetUpdateHandler(func(sel controllers.Selection, in models.SightingInput) { gotIn = in })

	test.Tap(m.form.UpdateButton)
	assert.Equal(t, models.ConservationStatus("rare"), gotIn.Status)
}

func TestManager_DialogsUseOverlay(t *testing.T) {
	m, w := newTestManager(t)

	m.ShowInfo("Success", "Species record added successfully.")
	assert.NotNil(t, w.Canvas().Overlays().Top())
	assert.Equal(t, "Species record added successfully.", m.statusBar.Status())

	m.ShowError("Database Error", errors.New("database is locked"))
	assert.Equal(t, "Database Error", m.statusBar.Status())
}

func TestManager_ConfirmWaitsForUser(t *testing.T) {
	m, w := newTestManager(t)

	confirmed := false
	m.Confirm("Confirm Delete", "Are you sure you want to delete this record?", func() { confirmed = true })

	assert.NotNil(t, w.Canvas().Overlays().Top())
	assert.False(t, confirmed)
}

func TestManager_StatisticsTab(t *testing.T) {
	m, _ := newTestManager(t)

	counts := models.Breakdown(map[string]int{"Vulnerable": 2})
	m.ShowStatistics(counts)
	assert.Equal(t, counts, m.chart.Counts())

	assert.Equal(t, 0, m.tabs.SelectedIndex())
	m.ShowStatisticsTab()
	assert.Equal(t, TabStatistics, m.tabs.Selected().Text)
}

func TestManager_SortHandler(t *testing.T) {
	m, _ := newTestManager(t)

	var got []models.SortKey
	m.SetSortHandler(func(k models.SortKey) { got = append(got, k) })

	m.SetSortKey(models.SortName)
	assert.Empty(t, got, "reflecting the key does not request a reload")

	m.table.SortSelect.SetSelected("Date recorded")
	assert.Equal(t, []models.SortKey{models.SortDate}, got)
}

func TestManager_ShutdownIsIdempotent(t *testing.T) {
	m, _ := newTestManager(t)
	m.Shutdown()
	m.Shutdown()
	assert.True(t, m.isShutdown)
}
