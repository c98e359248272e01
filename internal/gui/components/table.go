package components

import (
	"strconv"

	"marine-guardian/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Columns are the table headings in display order
var Columns = []string{"ID", "Common Name", "Scientific Name", "Status", "Location", "Date"}

var columnWidths = []float32{50, 150, 160, 150, 140, 100}

// SortOption pairs a sort key with its label in the sort selector
type SortOption struct {
	Key   models.SortKey
	Label string
}

var SortOptions = []SortOption{
	{Key: models.SortInsertion, Label: "Newest first"},
	{Key: models.SortName, Label: "Name (A-Z)"},
	{Key: models.SortDate, Label: "Date recorded"},
}

// SightingTable lists sightings and tracks which row is selected
type SightingTable struct {
	container  *fyne.Container
	table      *widget.Table
	SortSelect *widget.Select
	countLabel *widget.Label

	sightings   []models.Sighting
	selectedRow int

	selectHandler func(models.Sighting)
	sortHandler   func(models.SortKey)
}

func NewSightingTable() *SightingTable {
	st := &SightingTable{selectedRow: -1}
	st.setupTable()
	return st
}

func (st *SightingTable) setupTable() {
	st.table = widget.NewTable(
		func() (int, int) {
			return len(st.sightings), len(Columns)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			cell.(*widget.Label).SetText(st.CellText(id.Row, id.Col))
		},
	)
	st.table.ShowHeaderRow = true
	st.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	st.table.UpdateHeader = func(id widget.TableCellID, cell fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(Columns) {
			cell.(*widget.Label).SetText(Columns[id.Col])
		}
	}
	for col, width := range columnWidths {
		st.table.SetColumnWidth(col, width)
	}
	st.table.OnSelected = st.onSelected

	labels := make([]string, len(SortOptions))
	for i, opt := range SortOptions {
		labels[i] = opt.Label
	}
	st.SortSelect = widget.NewSelect(labels, st.onSortSelected)
	st.SortSelect.SetSelectedIndex(0)

	st.countLabel = widget.NewLabel("0 records")

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(widget.NewLabel("Sort by:"), st.SortSelect),
		st.countLabel,
	)
	st.container = container.NewBorder(toolbar, nil, nil, nil, st.table)
}

func (st *SightingTable) GetContainer() *fyne.Container {
	return st.container
}

// SetSightings replaces the rows and drops any selection
func (st *SightingTable) SetSightings(sightings []models.Sighting) {
	st.sightings = sightings
	st.selectedRow = -1
	st.table.UnselectAll()
	st.table.Refresh()

	if len(sightings) == 1 {
		st.countLabel.SetText("1 record")
	} else {
		st.countLabel.SetText(strconv.Itoa(len(sightings)) + " records")
	}
}

func (st *SightingTable) Sightings() []models.Sighting {
	return st.sightings
}

// SetSortKey shows key in the selector without firing the sort handler
func (st *SightingTable) SetSortKey(key models.SortKey) {
	handler := st.sortHandler
	st.sortHandler = nil
	for i, opt := range SortOptions {
		if opt.Key == key {
			st.SortSelect.SetSelectedIndex(i)
		}
	}
	st.sortHandler = handler
}

// CellText renders one cell; out of range cells are empty
func (st *SightingTable) CellText(row, col int) string {
	if row < 0 || row >= len(st.sightings) {
		return ""
	}
	s := st.sightings[row]
	switch col {
	case 0:
		return strconv.FormatInt(s.ID, 10)
	case 1:
		return s.CommonName
	case 2:
		return s.ScientificName
	case 3:
		return string(s.ConservationStatus)
	case 4:
		return s.LocationSighted
	case 5:
		return s.DateString()
	default:
		return ""
	}
}

// Selected returns the sighting on the selected row
func (st *SightingTable) Selected() (models.Sighting, bool) {
	if st.selectedRow < 0 || st.selectedRow >= len(st.sightings) {
		return models.Sighting{}, false
	}
	return st.sightings[st.selectedRow], true
}

// SelectRow highlights row and notifies the select handler
func (st *SightingTable) SelectRow(row int) {
	st.table.Select(widget.TableCellID{Row: row, Col: 0})
}

// ClearSelection unhighlights the selected row
func (st *SightingTable) ClearSelection() {
	st.selectedRow = -1
	st.table.UnselectAll()
}

func (st *SightingTable) SetSelectHandler(handler func(models.Sighting)) {
	st.selectHandler = handler
}

func (st *SightingTable) SetSortHandler(handler func(models.SortKey)) {
	st.sortHandler = handler
}

func (st *SightingTable) onSelected(id widget.TableCellID) {
	if id.Row < 0 || id.Row >= len(st.sightings) {
		return
	}
	st.selectedRow = id.Row
	if st.selectHandler != nil {
		st.selectHandler(st.sightings[id.Row])
	}
}

func (st *SightingTable) onSortSelected(label string) {
	for _, opt := range SortOptions {
		if opt.Label == label && st.sortHandler != nil {
			st.sortHandler(opt.Key)
		}
	}
}
