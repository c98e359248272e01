package components

import (
	"testing"
	"time"

	"marine-guardian/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []models.Sighting{
	{
		ID:                 2,
		CommonName:         "Vaquita",
		ScientificName:     "Phocoena sinus",
		ConservationStatus: models.StatusCriticallyEndangered,
		LocationSighted:    "Gulf of California",
		DateRecorded:       time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:                 1,
		CommonName:         "Dugong",
		ScientificName:     "Dugong dugon",
		ConservationStatus: models.StatusVulnerable,
		LocationSighted:    "Reef A",
		DateRecorded:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	},
}

func TestSightingForm_InputAndClear(t *testing.T) {
	test.NewTempApp(t)
	form := NewSightingForm()

	test.Type(form.CommonName, "Dugong")
	test.Type(form.Location, "Reef A")
	form.Status.SetSelected(string(models.StatusVulnerable))

	in := form.Input()
	assert.Equal(t, "Dugong", in.CommonName)
	assert.Equal(t, "Reef A", in.Location)
	assert.Equal(t, models.StatusVulnerable, in.Status)
	assert.Empty(t, in.ScientificName)

	form.Clear()
	assert.Equal(t, models.SightingInput{}, form.Input())
}

func TestSightingForm_FillKeepsUnknownStatus(t *testing.T) {
	test.NewTempApp(t)
	form := NewSightingForm()

	form.Fill(sample[1])
	assert.Equal(t, sample[1].Input(), form.Input())
	assert.Equal(t, models.StatusLabels(), form.Status.Options)

	odd := sample[1]
	odd.ConservationStatus = "Data Deficient"
	form.Fill(odd)
	assert.Equal(t, "Data Deficient", form.Status.Selected)
	assert.Equal(t, models.ConservationStatus("Data Deficient"), form.Input().Status)
	assert.Contains(t, form.Status.Options, "Data Deficient")

	form.Fill(sample[0])
	assert.Equal(t, string(models.StatusCriticallyEndangered), form.Status.Selected)
	assert.NotContains(t, form.Status.Options, "Data Deficient")

	form.Fill(odd)
	form.Clear()
	assert.Empty(t, form.Status.Selected)
	assert.Equal(t, models.StatusLabels(), form.Status.Options)
}

func TestSightingForm_ButtonsFireHandlers(t *testing.T) {
	test.NewTempApp(t)
	form := NewSightingForm()

	var fired []string
	form.SetAddHandler(func() { fired = append(fired, "add") })
	form.SetUpdateHandler(func() { fired = append(fired, "update") })
	form.SetDeleteHandler(func() { fired = append(fired, "delete") })
	form.SetClearHandler(func() { fired = append(fired, "clear") })

	test.Tap(form.AddButton)
	test.Tap(form.UpdateButton)
	test.Tap(form.DeleteButton)
	test.Tap(form.ClearButton)

	assert.Equal(t, []string{"add", "update", "delete", "clear"}, fired)
}

func TestSightingTable_CellText(t *testing.T) {
	test.NewTempApp(t)
	table := NewSightingTable()
	table.SetSightings(sample)

	assert.Equal(t, "2", table.CellText(0, 0))
	assert.Equal(t, "Vaquita", table.CellText(0, 1))
	assert.Equal(t, "Critically Endangered", table.CellText(0, 3))
	assert.Equal(t, "2024-06-01", table.CellText(1, 5))
	assert.Empty(t, table.CellText(5, 1))
	assert.Empty(t, table.CellText(0, len(Columns)))
	assert.Equal(t, "2 records", table.countLabel.Text)
}

func TestSightingTable_SelectRow(t *testing.T) {
	a := test.NewTempApp(t)
	table := NewSightingTable()
	w := a.NewWindow("table")
	w.SetContent(table.GetContainer())

	var picked []int64
	table.SetSelectHandler(func(s models.Sighting) { picked = append(picked, s.ID) })
	table.SetSightings(sample)

	_, ok := table.Selected()
	assert.False(t, ok)

	table.SelectRow(1)
	got, ok := table.Selected()
	require.True(t, ok)
	assert.EqualValues(t, 1, got.ID)
	assert.Equal(t, []int64{1}, picked)

	table.SetSightings(sample[:1])
	_, ok = table.Selected()
	assert.False(t, ok, "reloading rows drops the selection")
}

func TestSightingTable_SortSelector(t *testing.T) {
	test.NewTempApp(t)
	table := NewSightingTable()

	var keys []models.SortKey
	table.SetSortHandler(func(k models.SortKey) { keys = append(keys, k) })

	table.SortSelect.SetSelected("Name (A-Z)")
	assert.Equal(t, []models.SortKey{models.SortName}, keys)

	table.SetSortKey(models.SortDate)
	assert.Equal(t, "Date recorded", table.SortSelect.Selected)
	assert.Len(t, keys, 1, "programmatic change does not fire the handler")
}

func TestStatusChart_Update(t *testing.T) {
	test.NewTempApp(t)
	chart := NewStatusChart()
	assert.Equal(t, []float32{0, 0, 0, 0}, chart.BarHeights())

	counts := models.Breakdown(map[string]int{"Vulnerable": 4, "Endangered": 2, "Unknown": 1})
	chart.Update(counts)

	assert.Equal(t, []float32{0, 1, 0.5, 0, 0.25}, chart.BarHeights())
	assert.Equal(t, counts, chart.Counts())
	assert.Equal(t, "Total sightings: 7", chart.totalLabel.Text)
	assert.Equal(t, "Other\n1", BarLabel(counts[4]))
}

func TestStatusBarAndHeader(t *testing.T) {
	test.NewTempApp(t)
	bar := NewStatusBar()
	assert.Equal(t, "Ready", bar.Status())

	bar.SetStatus("Loaded 3 records")
	assert.Equal(t, "Loaded 3 records", bar.Status())

	bar.SetDatabasePath("data/marine_life.db")
	assert.Equal(t, "Database: data/marine_life.db", bar.dbLabel.Text)

	header := NewHeader()
	require.Len(t, header.Objects, 2)
	text := header.Objects[1].(*fyne.Container).Objects[0].(*canvas.Text)
	assert.Equal(t, HeaderText, text.Text)
}
