package components

import (
	"marine-guardian/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	fynelayout "fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const FormTitle = "Manage Species Records"

// SightingForm holds the input fields and the action buttons
type SightingForm struct {
	container *fyne.Container

	CommonName     *widget.Entry
	ScientificName *widget.Entry
	Status         *widget.Select
	Location       *widget.Entry

	AddButton    *widget.Button
	UpdateButton *widget.Button
	DeleteButton *widget.Button
	ClearButton  *widget.Button

	addHandler    func()
	updateHandler func()
	deleteHandler func()
	clearHandler  func()
}

func NewSightingForm() *SightingForm {
	form := &SightingForm{}
	form.setupForm()
	return form
}

func (f *SightingForm) setupForm() {
	f.CommonName = widget.NewEntry()
	f.CommonName.SetPlaceHolder("e.g. Dugong")
	f.ScientificName = widget.NewEntry()
	f.ScientificName.SetPlaceHolder("e.g. Dugong dugon")
	f.Status = widget.NewSelect(models.StatusLabels(), nil)
	f.Status.PlaceHolder = "(select status)"
	f.Location = widget.NewEntry()
	f.Location.SetPlaceHolder("e.g. Reef A")

	leftColumn := container.New(fynelayout.NewFormLayout(),
		widget.NewLabel("Common Name:"), f.CommonName,
		widget.NewLabel("Conservation Status:"), f.Status,
	)
	rightColumn := container.New(fynelayout.NewFormLayout(),
		widget.NewLabel("Scientific Name:"), f.ScientificName,
		widget.NewLabel("Location Sighted:"), f.Location,
	)

	f.AddButton = widget.NewButton("Add Record", f.onAdd)
	f.AddButton.Importance = widget.SuccessImportance
	f.UpdateButton = widget.NewButton("Update Selected", f.onUpdate)
	f.UpdateButton.Importance = widget.HighImportance
	f.DeleteButton = widget.NewButton("Delete Selected", f.onDelete)
	f.DeleteButton.Importance = widget.DangerImportance
	f.ClearButton = widget.NewButton("Clear Form", f.onClear)

	buttons := container.NewCenter(container.NewHBox(
		f.AddButton,
		f.UpdateButton,
		f.DeleteButton,
		f.ClearButton,
	))

	card := widget.NewCard(FormTitle, "", container.NewVBox(
		container.NewGridWithColumns(2, leftColumn, rightColumn),
		buttons,
	))
	f.container = container.NewPadded(card)
}

func (f *SightingForm) GetContainer() *fyne.Container {
	return f.container
}

// Input returns the current field values
func (f *SightingForm) Input() models.SightingInput {
	return models.SightingInput{
		CommonName:     f.CommonName.Text,
		ScientificName: f.ScientificName.Text,
		Status:         models.ConservationStatus(f.Status.Selected),
		Location:       f.Location.Text,
	}
}

// Fill copies a sighting into the fields. A stored status outside the known
// set is offered as an extra option and stays selected, so Input returns it
// unchanged.
func (f *SightingForm) Fill(s models.Sighting) {
	f.CommonName.SetText(s.CommonName)
	f.ScientificName.SetText(s.ScientificName)
	f.setStatus(s.ConservationStatus)
	f.Location.SetText(s.LocationSighted)
}

// Clear empties every field
func (f *SightingForm) Clear() {
	f.CommonName.SetText("")
	f.ScientificName.SetText("")
	f.setStatus("")
	f.Location.SetText("")
}

func (f *SightingForm) setStatus(status models.ConservationStatus) {
	options := models.StatusLabels()
	if status != "" && !status.IsKnown() {
		options = append(options, string(status))
	}
	f.Status.Options = options
	f.Status.Refresh()

	if status == "" {
		f.Status.ClearSelected()
		return
	}
	f.Status.SetSelected(string(status))
}

func (f *SightingForm) SetAddHandler(handler func()) {
	f.addHandler = handler
}

func (f *SightingForm) SetUpdateHandler(handler func()) {
	f.updateHandler = handler
}

func (f *SightingForm) SetDeleteHandler(handler func()) {
	f.deleteHandler = handler
}

func (f *SightingForm) SetClearHandler(handler func()) {
	f.clearHandler = handler
}

func (f *SightingForm) onAdd() {
	if f.addHandler != nil {
		f.addHandler()
	}
}

func (f *SightingForm) onUpdate() {
	if f.updateHandler != nil {
		f.updateHandler()
	}
}

func (f *SightingForm) onDelete() {
	if f.deleteHandler != nil {
		f.deleteHandler()
	}
}

func (f *SightingForm) onClear() {
	if f.clearHandler != nil {
		f.clearHandler()
	}
}
